package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// PricingSnapshot captures menu prices at a point in time. A snapshot taken
// at cart-add time is what the order eventually records; later catalog price
// changes never leak into carts or placed orders.
type PricingSnapshot struct {
	menu repository.MenuRepository
}

// NewPricingSnapshot constructs PricingSnapshot.
func NewPricingSnapshot(menu repository.MenuRepository) *PricingSnapshot {
	return &PricingSnapshot{menu: menu}
}

// Snapshot returns the current unit price of the menu item and the line price
// for the requested quantity.
func (p *PricingSnapshot) Snapshot(ctx context.Context, menuItemID int64, quantity int32) (unit, line decimal.Decimal, err error) {
	item, err := p.menu.GetItem(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return decimal.Decimal{}, decimal.Decimal{}, domainErrors.ErrItemNotFound
		}
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	unit = item.Price
	line = unit.Mul(decimal.NewFromInt32(quantity))
	return unit, line, nil
}
