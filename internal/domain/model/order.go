package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the delivery lifecycle.
type OrderStatus string

const (
	OrderStatusUnassigned     OrderStatus = "UNASSIGNED"
	OrderStatusAssigned       OrderStatus = "ASSIGNED"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
)

// ParseOrderStatus validates a raw status value against the enumeration.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusUnassigned, OrderStatusAssigned, OrderStatusOutForDelivery, OrderStatusDelivered:
		return OrderStatus(raw), true
	}
	return "", false
}

// CanAdvanceTo reports whether next is the single forward step from s.
// Delivery progression never skips or moves backwards.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	switch s {
	case OrderStatusAssigned:
		return next == OrderStatusOutForDelivery
	case OrderStatusOutForDelivery:
		return next == OrderStatusDelivered
	}
	return false
}

// Order is the priced, immutable record produced at checkout. Total is
// computed once from the cart snapshot and never recomputed from the menu.
type Order struct {
	ID             int64
	UserID         int64
	DeliveryCrewID *int64
	Status         OrderStatus
	Total          decimal.Decimal
	Date           time.Time
	Items          []OrderItem
}

// OrderItem is a historical receipt line owned by its order.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	Quantity   int32
	UnitPrice  decimal.Decimal
}
