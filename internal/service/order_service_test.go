package service

import (
	"errors"
	"testing"

	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"

	"github.com/shopspring/decimal"
)

func mustCreateProduct(t *testing.T, repo repository.ProductRepository, title, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:    title,
		Price:    models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Category: "test",
		InStock:  true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product %s failed: %v", title, err)
	}
	return product
}

func TestCheckoutEmptyCart(t *testing.T) {
	productRepo, cartRepo, orderRepo := newTestRepos(t)
	svc := NewOrderService(orderRepo, cartRepo, productRepo)

	_, err := svc.Checkout("u1")
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	orders, err := svc.ListByUser("u1")
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("empty-cart checkout must not create an order, got %d", len(orders))
	}
}

func TestCheckoutComputesRoundedTotal(t *testing.T) {
	productRepo, cartRepo, orderRepo := newTestRepos(t)
	cartSvc := NewCartService(cartRepo)
	svc := NewOrderService(orderRepo, cartRepo, productRepo)

	productA := mustCreateProduct(t, productRepo, "Product A", "10.00")
	productB := mustCreateProduct(t, productRepo, "Product B", "5.005")

	if _, err := cartSvc.Add(AddCartItemInput{UserID: "u1", ProductID: productA.ID, Quantity: 2}); err != nil {
		t.Fatalf("add product A failed: %v", err)
	}
	if _, err := cartSvc.Add(AddCartItemInput{UserID: "u1", ProductID: productB.ID, Quantity: 1}); err != nil {
		t.Fatalf("add product B failed: %v", err)
	}

	order, err := svc.Checkout("u1")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("expected persisted order id")
	}
	if order.Status != models.OrderStatusPlaced {
		t.Fatalf("expected status placed, got %q", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	// 10.00*2 + 5.005*1 = 25.005 -> 25.01（单价落库时已按 2 位小数取整）
	if order.Total.String() != "25.01" {
		t.Fatalf("expected total 25.01, got %s", order.Total.String())
	}

	items, err := cartSvc.ListByUser("u1")
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d rows", len(items))
	}
}

func TestCheckoutSnapshotsPriceAtOrderTime(t *testing.T) {
	productRepo, cartRepo, orderRepo := newTestRepos(t)
	cartSvc := NewCartService(cartRepo)
	svc := NewOrderService(orderRepo, cartRepo, productRepo)

	product := mustCreateProduct(t, productRepo, "Snapshot Product", "20.00")
	if _, err := cartSvc.Add(AddCartItemInput{UserID: "u1", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := svc.Checkout("u1")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	item := order.Items[0]
	if item.ProductID != product.ID || item.Title != "Snapshot Product" {
		t.Fatalf("unexpected snapshot: %+v", item)
	}
	if item.Price.String() != "20.00" {
		t.Fatalf("expected snapshot price 20.00, got %s", item.Price.String())
	}
}

// 购物车中引用已删除商品的行会被静默跳过，且购物车仍整体清空。
// 这是对既有行为的刻意保留，调用方不会感知丢行。
func TestCheckoutSkipsUnresolvableProductAndStillClearsCart(t *testing.T) {
	productRepo, cartRepo, orderRepo := newTestRepos(t)
	cartSvc := NewCartService(cartRepo)
	svc := NewOrderService(orderRepo, cartRepo, productRepo)

	kept := mustCreateProduct(t, productRepo, "Kept Product", "10.00")
	doomed := mustCreateProduct(t, productRepo, "Doomed Product", "99.00")

	if _, err := cartSvc.Add(AddCartItemInput{UserID: "u1", ProductID: kept.ID, Quantity: 1}); err != nil {
		t.Fatalf("add kept failed: %v", err)
	}
	if _, err := cartSvc.Add(AddCartItemInput{UserID: "u1", ProductID: doomed.ID, Quantity: 1}); err != nil {
		t.Fatalf("add doomed failed: %v", err)
	}
	if err := productRepo.Delete(doomed.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	order, err := svc.Checkout("u1")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected only the resolvable item, got %d items", len(order.Items))
	}
	if order.Items[0].ProductID != kept.ID {
		t.Fatalf("expected kept product in order, got product %d", order.Items[0].ProductID)
	}
	if order.Total.String() != "10.00" {
		t.Fatalf("expected total 10.00, got %s", order.Total.String())
	}

	items, err := cartSvc.ListByUser("u1")
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart must be fully cleared even with skipped rows, got %d rows", len(items))
	}
}

func TestOrderHistory(t *testing.T) {
	productRepo, cartRepo, orderRepo := newTestRepos(t)
	cartSvc := NewCartService(cartRepo)
	svc := NewOrderService(orderRepo, cartRepo, productRepo)

	orders, err := svc.ListByUser("nobody")
	if err != nil {
		t.Fatalf("expected empty history without error, got %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty history, got %d", len(orders))
	}

	product := mustCreateProduct(t, productRepo, "History Product", "3.00")
	if _, err := cartSvc.Add(AddCartItemInput{UserID: "u1", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	placed, err := svc.Checkout("u1")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	orders, err = svc.ListByUser("u1")
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].ID != placed.ID {
		t.Fatalf("expected order %d, got %d", placed.ID, orders[0].ID)
	}
	if len(orders[0].Items) != 1 {
		t.Fatalf("expected preloaded items, got %d", len(orders[0].Items))
	}
	if orders[0].Total.String() != "6.00" {
		t.Fatalf("expected total 6.00, got %s", orders[0].Total.String())
	}
}
