package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	testhelpers "github.com/polkiloo/littlelemon/internal/test"
)

func TestCartUseCaseAddItemSnapshotsUnitPrice(t *testing.T) {
	menu := testhelpers.NewMenuRepositoryStub()
	item := menu.AddItem("Bruschetta", "5.00", 1)
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts, NewPricingSnapshot(menu))

	line, err := uc.AddItem(context.Background(), 1, item.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !line.UnitPrice.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("unexpected unit price %s", line.UnitPrice)
	}
	if !line.Price.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("unexpected line price %s", line.Price)
	}
}

func TestCartUseCaseRepeatedAddMergesAndKeepsFirstPrice(t *testing.T) {
	menu := testhelpers.NewMenuRepositoryStub()
	item := menu.AddItem("Bruschetta", "5.00", 1)
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts, NewPricingSnapshot(menu))

	ctx := context.Background()
	if _, err := uc.AddItem(ctx, 1, item.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	// A catalog price change between adds must not leak into the line.
	item.Price = decimal.RequireFromString("9.99")

	line, err := uc.AddItem(ctx, 1, item.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if line.Quantity != 5 {
		t.Fatalf("expected quantities to accumulate into 5, got %d", line.Quantity)
	}
	if !line.UnitPrice.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("expected first-add unit price to survive, got %s", line.UnitPrice)
	}
	if !line.Price.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("unexpected merged line price %s", line.Price)
	}

	lines, err := uc.ListItems(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
}

func TestCartUseCaseAddItemRejectsNonPositiveQuantity(t *testing.T) {
	menu := testhelpers.NewMenuRepositoryStub()
	menu.AddItem("Bruschetta", "5.00", 1)
	carts := &testhelpers.CartRepositoryStub{AddLineFn: func(context.Context, int64, int64, int32, decimal.Decimal) (*model.CartLine, error) {
		t.Fatal("cart must not be touched for invalid quantity")
		return nil, nil
	}}
	uc := NewCartUseCase(carts, NewPricingSnapshot(menu))

	if _, err := uc.AddItem(context.Background(), 1, 1, 0); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for zero, got %v", err)
	}
	if _, err := uc.AddItem(context.Background(), 1, 1, -2); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for negative, got %v", err)
	}
}

func TestCartUseCaseAddItemUnknownItem(t *testing.T) {
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{}, NewPricingSnapshot(testhelpers.NewMenuRepositoryStub()))

	if _, err := uc.AddItem(context.Background(), 1, 99, 1); err != domainErrors.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCartUseCaseLinesAreIndependentPerUser(t *testing.T) {
	menu := testhelpers.NewMenuRepositoryStub()
	item := menu.AddItem("Bruschetta", "5.00", 1)
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts, NewPricingSnapshot(menu))

	ctx := context.Background()
	if _, err := uc.AddItem(ctx, 1, item.ID, 1); err != nil {
		t.Fatalf("add for user 1 failed: %v", err)
	}
	if _, err := uc.AddItem(ctx, 2, item.ID, 4); err != nil {
		t.Fatalf("add for user 2 failed: %v", err)
	}

	lines, err := uc.ListItems(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("unexpected lines for user 1: %+v", lines)
	}
}

func TestCartUseCaseClear(t *testing.T) {
	menu := testhelpers.NewMenuRepositoryStub()
	item := menu.AddItem("Bruschetta", "5.00", 1)
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts, NewPricingSnapshot(menu))

	ctx := context.Background()
	if _, err := uc.AddItem(ctx, 1, item.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := uc.Clear(ctx, 1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	lines, err := uc.ListItems(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}

	// Clearing an already empty cart succeeds.
	if err := uc.Clear(ctx, 1); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}
