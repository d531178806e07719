package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	testhelpers "github.com/polkiloo/littlelemon/internal/test"
)

func TestMenuUseCaseWritesRequireStaff(t *testing.T) {
	menu := testhelpers.NewMenuRepositoryStub()
	item := menu.AddItem("Greek Salad", "7.50", 1)
	uc := NewMenuUseCase(menu)
	ctx := context.Background()
	price := decimal.RequireFromString("4.25")

	if _, err := uc.CreateItem(ctx, customer(10), "Lemon Cake", price, false, 1); err != domainErrors.ErrForbidden {
		t.Fatalf("customer create must be forbidden, got %v", err)
	}
	if err := uc.UpdateItem(ctx, crewMember(20), item); err != domainErrors.ErrForbidden {
		t.Fatalf("crew update must be forbidden, got %v", err)
	}
	if err := uc.DeleteItem(ctx, customer(10), item.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("customer delete must be forbidden, got %v", err)
	}
	if _, err := uc.CreateCategory(ctx, customer(10), "desserts", "Desserts"); err != domainErrors.ErrForbidden {
		t.Fatalf("customer category create must be forbidden, got %v", err)
	}

	created, err := uc.CreateItem(ctx, manager(30), "Lemon Cake", price, true, 1)
	if err != nil {
		t.Fatalf("manager create failed: %v", err)
	}
	if created.Title != "Lemon Cake" || !created.Featured {
		t.Fatalf("unexpected item %+v", created)
	}
}

func TestMenuUseCaseCreateItemValidation(t *testing.T) {
	uc := NewMenuUseCase(testhelpers.NewMenuRepositoryStub())
	ctx := context.Background()

	if _, err := uc.CreateItem(ctx, manager(30), "   ", decimal.RequireFromString("1.00"), false, 1); err != domainErrors.ErrInvalidInput {
		t.Fatalf("blank title must be rejected, got %v", err)
	}
	if _, err := uc.CreateItem(ctx, manager(30), "Soup", decimal.RequireFromString("-1.00"), false, 1); err != domainErrors.ErrInvalidInput {
		t.Fatalf("negative price must be rejected, got %v", err)
	}
}

func TestMenuUseCaseReadsAreOpen(t *testing.T) {
	menu := testhelpers.NewMenuRepositoryStub()
	item := menu.AddItem("Greek Salad", "7.50", 1)
	uc := NewMenuUseCase(menu)
	ctx := context.Background()

	items, err := uc.ListItems(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	got, err := uc.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("7.50")) {
		t.Fatalf("unexpected price %s", got.Price)
	}

	if _, err := uc.GetItem(ctx, 99); err != domainErrors.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestMenuUseCaseUpdateAndDeleteMapNotFound(t *testing.T) {
	uc := NewMenuUseCase(testhelpers.NewMenuRepositoryStub())
	ctx := context.Background()

	missing := &model.MenuItem{ID: 99, Title: "Ghost", Price: decimal.RequireFromString("1.00")}
	if err := uc.UpdateItem(ctx, manager(30), missing); err != domainErrors.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound on update, got %v", err)
	}
	if err := uc.DeleteItem(ctx, manager(30), 99); err != domainErrors.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound on delete, got %v", err)
	}
}
