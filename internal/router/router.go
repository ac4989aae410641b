package router

import (
	"github.com/shoplite/internal/config"
	publichandlers "github.com/shoplite/internal/http/handlers/public"
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由。路径与原接口保持兼容，全部挂在根路径下。
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", handler.Root)

	// 商品目录
	r.POST("/products", handler.CreateProduct)
	r.GET("/products", handler.ListProducts)

	// 购物车
	r.POST("/cart", handler.AddToCart)
	r.GET("/cart/:user_id", handler.GetCart)
	r.DELETE("/cart/:item_id", handler.DeleteCartItem)

	// 订单
	r.POST("/orders", handler.PlaceOrder)
	r.GET("/orders/:user_id", handler.ListOrders)

	return r
}
