package service

import (
	"testing"

	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB 打开仅单连接的内存库，避免连接池拿到不同的内存实例
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newTestRepos(t *testing.T) (repository.ProductRepository, repository.CartRepository, repository.OrderRepository) {
	t.Helper()
	db := newTestDB(t)
	return repository.NewProductRepository(db), repository.NewCartRepository(db), repository.NewOrderRepository(db)
}
