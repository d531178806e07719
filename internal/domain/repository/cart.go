package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// CartRepository manages the mutable per-user cart.
//
// AddLine must be an atomic upsert keyed on (user, menu item): when the line
// already exists the quantity is incremented and the stored unit price is
// kept, the supplied unitPrice applies only to a freshly created line.
type CartRepository interface {
	AddLine(ctx context.Context, userID, menuItemID int64, quantity int32, unitPrice decimal.Decimal) (*model.CartLine, error)
	ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}
