package public

import (
	"errors"
	"net/http"

	"github.com/shoplite/internal/http/response"
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	status int
	detail string
}

// respondServiceError 按规则表映射业务错误；
// 字段校验错误统一转为 400 并携带字段信息，未命中的错误落到 500。
func respondServiceError(c *gin.Context, err error, rules []mappedHandlerError, fallbackDetail string) {
	if ve, ok := service.AsValidationError(err); ok {
		response.BadRequest(c, gin.H{"field": ve.Field, "reason": ve.Reason})
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.status, rule.detail)
			return
		}
	}
	logger.Errorw("request_failed", "error", err, "path", c.Request.URL.Path)
	response.Internal(c, fallbackDetail)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemNotFound, status: http.StatusNotFound, detail: "Item not found"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, status: http.StatusBadRequest, detail: "Cart is empty"},
}
