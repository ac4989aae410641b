package service

import (
	"strings"

	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务，承载结算流程与订单查询
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Checkout 将用户购物车结算为订单并清空购物车。
// 订单项为下单时刻的标题/单价快照；购物车行引用的商品已不存在时，
// 该行被跳过并记录 warning 日志，订单只包含可解析的行，购物车仍整体清空。
func (s *OrderService) Checkout(userID string) (*models.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewValidationError("user_id", "required")
	}

	cartItems, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	productIDs := make([]uint, 0, len(cartItems))
	for _, ci := range cartItems {
		productIDs = append(productIDs, ci.ProductID)
	}
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	total := decimal.Zero
	skipped := 0
	for _, ci := range cartItems {
		product, ok := productByID[ci.ProductID]
		if !ok {
			// 商品已删除：跳过该行，订单照常创建，购物车仍会整体清空
			skipped++
			logger.Warnw("checkout_item_skipped",
				"user_id", userID,
				"cart_item_id", ci.ID,
				"product_id", ci.ProductID,
			)
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Quantity:  ci.Quantity,
		})
		total = total.Add(product.Price.Decimal.Mul(decimal.NewFromInt(int64(ci.Quantity))))
	}

	order := &models.Order{
		UserID: userID,
		Status: models.OrderStatusPlaced,
		Total:  models.NewMoneyFromDecimal(total),
	}

	// 订单落库与清空购物车在同一事务中完成
	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}

	logger.Infow("order_placed",
		"user_id", userID,
		"order_id", order.ID,
		"total", order.Total.String(),
		"item_count", len(order.Items),
		"skipped_count", skipped,
	)
	return order, nil
}

// ListByUser 返回用户全部订单；无订单时返回空序列而非错误
func (s *OrderService) ListByUser(userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []models.OrderItem{}
		}
	}
	return orders, nil
}
