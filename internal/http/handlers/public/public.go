package public

import (
	"github.com/shoplite/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Root 健康入口
func (h *Handler) Root(c *gin.Context) {
	response.JSON(c, gin.H{"message": "E-Commerce Backend Running"})
}
