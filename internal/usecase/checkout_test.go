package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	testhelpers "github.com/polkiloo/littlelemon/internal/test"
)

func TestCheckoutUseCasePlaceOrderSuccess(t *testing.T) {
	total := decimal.RequireFromString("13.00")
	orders := &testhelpers.OrderRepositoryStub{
		CreateFromCartFn: func(ctx context.Context, userID int64, date time.Time) (*model.Order, error) {
			if userID != 7 {
				t.Fatalf("unexpected user %d", userID)
			}
			return &model.Order{
				ID:     1,
				UserID: userID,
				Status: model.OrderStatusUnassigned,
				Total:  total,
				Date:   date,
				Items: []model.OrderItem{
					{ID: 1, OrderID: 1, MenuItemID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
					{ID: 2, OrderID: 1, MenuItemID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")},
				},
			}, nil
		},
	}
	uc := NewCheckoutUseCase(orders)

	order, err := uc.PlaceOrder(context.Background(), 7, nil)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Status != model.OrderStatusUnassigned {
		t.Fatalf("new orders start unassigned, got %s", order.Status)
	}
	if !order.Total.Equal(total) {
		t.Fatalf("unexpected total %s", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
}

func TestCheckoutUseCasePlaceOrderDefaultsDate(t *testing.T) {
	var seen time.Time
	orders := &testhelpers.OrderRepositoryStub{
		CreateFromCartFn: func(ctx context.Context, userID int64, date time.Time) (*model.Order, error) {
			seen = date
			return &model.Order{ID: 1, UserID: userID, Date: date}, nil
		},
	}
	uc := NewCheckoutUseCase(orders)

	before := time.Now()
	if _, err := uc.PlaceOrder(context.Background(), 1, nil); err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if seen.Before(before) || seen.After(time.Now()) {
		t.Fatalf("expected date to default to now, got %v", seen)
	}

	want := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	if _, err := uc.PlaceOrder(context.Background(), 1, &want); err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if !seen.Equal(want) {
		t.Fatalf("expected supplied date %v, got %v", want, seen)
	}
}

func TestCheckoutUseCasePlaceOrderEmptyCart(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		CreateFromCartFn: func(context.Context, int64, time.Time) (*model.Order, error) {
			return nil, domainErrors.ErrEmptyCart
		},
	}
	uc := NewCheckoutUseCase(orders)

	if _, err := uc.PlaceOrder(context.Background(), 1, nil); err != domainErrors.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutUseCasePlaceOrderWrapsStorageFailure(t *testing.T) {
	cause := errors.New("deadlock detected")
	orders := &testhelpers.OrderRepositoryStub{
		CreateFromCartFn: func(context.Context, int64, time.Time) (*model.Order, error) {
			return nil, cause
		},
	}
	uc := NewCheckoutUseCase(orders)

	_, err := uc.PlaceOrder(context.Background(), 1, nil)
	if !errors.Is(err, domainErrors.ErrTransactionFailed) {
		t.Fatalf("expected ErrTransactionFailed, got %v", err)
	}
}
