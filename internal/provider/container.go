package provider

import (
	"github.com/shoplite/internal/config"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
	"github.com/shoplite/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository

	// Services
	CatalogService *service.CatalogService
	CartService    *service.CartService
	OrderService   *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.ProductRepo)
}
