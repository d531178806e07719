package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// MonitorUseCase surfaces orders that need staff attention.
type MonitorUseCase struct {
	orders repository.OrderRepository
}

// NewMonitorUseCase constructs MonitorUseCase.
func NewMonitorUseCase(orders repository.OrderRepository) *MonitorUseCase {
	return &MonitorUseCase{orders: orders}
}

// StaleUnassigned returns orders that have waited for a delivery crew
// assignment longer than age.
func (u *MonitorUseCase) StaleUnassigned(ctx context.Context, age time.Duration) ([]model.Order, error) {
	return u.orders.ListUnassignedBefore(ctx, time.Now().Add(-age))
}
