package repository

import (
	"context"
	"time"

	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// CreateFromCart performs the whole checkout as one transaction: it locks and
// reads the user's cart lines, sums the total from the snapshotted line
// prices, creates the order with its items and drains the cart. Nothing is
// persisted when any step fails.
type OrderRepository interface {
	CreateFromCart(ctx context.Context, userID int64, date time.Time) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByCrew(ctx context.Context, crewID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListUnassignedBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error)
	UpdateDeliveryCrew(ctx context.Context, orderID, crewID int64) error
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdateDate(ctx context.Context, orderID int64, date time.Time) error
	Delete(ctx context.Context, orderID int64) error
}
