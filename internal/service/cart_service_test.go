package service

import (
	"errors"
	"testing"
)

func TestCartAddMergesSameProduct(t *testing.T) {
	_, cartRepo, _ := newTestRepos(t)
	svc := NewCartService(cartRepo)

	firstID, err := svc.Add(AddCartItemInput{UserID: "u1", ProductID: 7, Quantity: 2})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	secondID, err := svc.Add(AddCartItemInput{UserID: "u1", ProductID: 7, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if firstID != secondID {
		t.Fatalf("expected same row id for repeated add, got %d and %d", firstID, secondID)
	}

	items, err := svc.ListByUser("u1")
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single merged row, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected summed quantity 5, got %d", items[0].Quantity)
	}
}

func TestCartAddSeparateRowsPerProductAndUser(t *testing.T) {
	_, cartRepo, _ := newTestRepos(t)
	svc := NewCartService(cartRepo)

	if _, err := svc.Add(AddCartItemInput{UserID: "u1", ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add(AddCartItemInput{UserID: "u1", ProductID: 2, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add(AddCartItemInput{UserID: "u2", ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := svc.ListByUser("u1")
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows for u1, got %d", len(items))
	}
}

func TestCartAddValidation(t *testing.T) {
	_, cartRepo, _ := newTestRepos(t)
	svc := NewCartService(cartRepo)

	if _, err := svc.Add(AddCartItemInput{UserID: "", ProductID: 1, Quantity: 1}); err == nil {
		t.Fatalf("expected error for empty user_id")
	}
	if _, err := svc.Add(AddCartItemInput{UserID: "u1", ProductID: 0, Quantity: 1}); err == nil {
		t.Fatalf("expected error for zero product_id")
	}
	_, err := svc.Add(AddCartItemInput{UserID: "u1", ProductID: 1, Quantity: 0})
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error for quantity 0, got %v", err)
	}
	if ve.Field != "quantity" {
		t.Fatalf("expected quantity field error, got %q", ve.Field)
	}
}

func TestCartRemove(t *testing.T) {
	_, cartRepo, _ := newTestRepos(t)
	svc := NewCartService(cartRepo)

	id, err := svc.Add(AddCartItemInput{UserID: "u1", ProductID: 9, Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Remove(id); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.Remove(id); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound on second remove, got %v", err)
	}

	items, err := svc.ListByUser("u1")
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after remove, got %d rows", len(items))
	}
}
