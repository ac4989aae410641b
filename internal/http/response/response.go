package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON 成功响应，直接输出载荷本身
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应，输出 {"detail": ...} 与对应 HTTP 状态码
func Error(c *gin.Context, status int, detail interface{}) {
	c.JSON(status, gin.H{"detail": detail})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, detail interface{}) {
	Error(c, http.StatusBadRequest, detail)
}

// NotFound 404 响应
func NotFound(c *gin.Context, detail interface{}) {
	Error(c, http.StatusNotFound, detail)
}

// Internal 500 响应
func Internal(c *gin.Context, detail interface{}) {
	Error(c, http.StatusInternalServerError, detail)
}
