package main

import (
	"github.com/shoplite/internal/config"
	"github.com/shoplite/internal/logger"
	"github.com/shoplite/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品
	products := []models.Product{
		{
			Title:       "Wireless Bluetooth Earphones",
			Description: "High quality sound, long battery life, comfortable to wear",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			Category:    "electronics",
			ImageURL:    "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			InStock:     true,
		},
		{
			Title:       "Smart Watch",
			Description: "Fitness tracking, heart rate monitoring, 7-day battery",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.00)),
			Category:    "electronics",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800",
			InStock:     true,
		},
		{
			Title:       "Ceramic Coffee Mug",
			Description: "350ml double-walled ceramic mug",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(12.50)),
			Category:    "lifestyle",
			InStock:     true,
		},
		{
			Title:       "USB-C Charging Cable",
			Description: "1m braided cable, 60W fast charging",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(5.99)),
			Category:    "accessories",
			InStock:     false,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("title = ?", product.Title).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Title, err)
			} else {
				stdLog.Printf("Created product: %s", product.Title)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Title)
		}
	}

	// 添加演示用户
	demoAge := 30
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash demo password: %v", err)
	}
	demoUser := models.User{
		Name:         "Demo User",
		Email:        "demo@example.com",
		Address:      "1 Demo Street",
		Age:          &demoAge,
		IsActive:     true,
		PasswordHash: string(hash),
	}
	var existingUser models.User
	if err := models.DB.Where("email = ?", demoUser.Email).First(&existingUser).Error; err != nil {
		if err := models.DB.Create(&demoUser).Error; err != nil {
			stdLog.Printf("Failed to create demo user: %v", err)
		} else {
			stdLog.Printf("Created demo user: %s", demoUser.Email)
		}
	} else {
		stdLog.Printf("Demo user already exists: %s", demoUser.Email)
	}

	stdLog.Printf("Seed finished")
}
