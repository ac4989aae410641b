package public

import "github.com/shoplite/internal/provider"

// Handler 公开接口处理器入口。
// 整个 API 面向匿名调用方，user_id 为调用方自报的透传标识。
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
