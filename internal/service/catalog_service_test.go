package service

import (
	"testing"

	"github.com/shoplite/internal/models"

	"github.com/shopspring/decimal"
)

func TestCatalogCreateThenListRoundTrips(t *testing.T) {
	productRepo, _, _ := newTestRepos(t)
	svc := NewCatalogService(productRepo)

	created, err := svc.Create(CreateProductInput{
		Title:       "Mechanical Keyboard",
		Description: "87-key hot-swappable",
		Price:       models.NewMoneyFromDecimal(decimal.RequireFromString("79.90")),
		Category:    "electronics",
		ImageURL:    "https://example.com/kb.jpg",
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected store-assigned id, got 0")
	}
	if !created.InStock {
		t.Fatalf("expected in_stock to default to true")
	}

	products, err := svc.List()
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	got := products[0]
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}
	if got.Title != "Mechanical Keyboard" || got.Category != "electronics" {
		t.Fatalf("unexpected fields: title=%q category=%q", got.Title, got.Category)
	}
	if got.Price.String() != "79.90" {
		t.Fatalf("expected price 79.90, got %s", got.Price.String())
	}
}

func TestCatalogCreateZeroPriceAllowed(t *testing.T) {
	productRepo, _, _ := newTestRepos(t)
	svc := NewCatalogService(productRepo)

	created, err := svc.Create(CreateProductInput{
		Title:    "Free Sample",
		Price:    models.NewMoneyFromDecimal(decimal.Zero),
		Category: "samples",
	})
	if err != nil {
		t.Fatalf("zero price should be valid: %v", err)
	}
	if created.Price.String() != "0.00" {
		t.Fatalf("expected price 0.00, got %s", created.Price.String())
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	productRepo, _, _ := newTestRepos(t)
	svc := NewCatalogService(productRepo)

	cases := []struct {
		name  string
		input CreateProductInput
		field string
	}{
		{
			name:  "missing title",
			input: CreateProductInput{Category: "x", Price: models.NewMoneyFromFloat(1)},
			field: "title",
		},
		{
			name:  "missing category",
			input: CreateProductInput{Title: "x", Price: models.NewMoneyFromFloat(1)},
			field: "category",
		},
		{
			name:  "negative price",
			input: CreateProductInput{Title: "x", Category: "y", Price: models.NewMoneyFromDecimal(decimal.RequireFromString("-0.01"))},
			field: "price",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.input)
			ve, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}

	products, err := svc.List()
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("invalid inputs must not persist products, got %d rows", len(products))
	}
}
