package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// CheckoutUseCase converts a non-empty cart into an immutable priced order.
type CheckoutUseCase struct {
	orders repository.OrderRepository
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders}
}

// PlaceOrder drains the user's cart into a new order. The cart read, order
// and item creation and cart drain happen in one storage transaction; a
// failing step rolls everything back and surfaces as ErrTransactionFailed.
// An empty cart fails with ErrEmptyCart and creates nothing.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID int64, date *time.Time) (*model.Order, error) {
	orderDate := time.Now()
	if date != nil {
		orderDate = *date
	}

	order, err := u.orders.CreateFromCart(ctx, userID, orderDate)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmptyCart) {
			return nil, domainErrors.ErrEmptyCart
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrTransactionFailed, err)
	}
	return order, nil
}
