package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// CartUseCase manages the pending cart of a user.
type CartUseCase struct {
	carts   repository.CartRepository
	pricing *PricingSnapshot
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, pricing *PricingSnapshot) *CartUseCase {
	return &CartUseCase{carts: carts, pricing: pricing}
}

// AddItem puts quantity units of a menu item into the user's cart. Repeated
// adds of the same item accumulate into one line that keeps the unit price
// snapshotted by the first add.
func (u *CartUseCase) AddItem(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	unitPrice, _, err := u.pricing.Snapshot(ctx, menuItemID, quantity)
	if err != nil {
		return nil, err
	}

	return u.carts.AddLine(ctx, userID, menuItemID, quantity, unitPrice)
}

// ListItems returns all cart lines of the user.
func (u *CartUseCase) ListItems(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return u.carts.ListByUser(ctx, userID)
}

// Clear removes every cart line of the user. Clearing an empty cart is a no-op.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
