package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest optionally supplies the order date; checkout defaults to
// the current time when absent.
type PlaceOrderRequest struct {
	Date *time.Time `json:"date"`
}

// OrderPatchRequest carries exactly one of the two gated order mutations:
// crew assignment (manager) or status progression (assigned crew).
type OrderPatchRequest struct {
	DeliveryCrew *int64  `json:"delivery_crew"`
	Status       *string `json:"status"`
}

// OrderDateRequest updates the order date while content is still mutable.
type OrderDateRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// OrderItemResponse is one receipt line of an order.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	Order     int64           `json:"order"`
	MenuItem  int64           `json:"menuitem"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse is the public shape of an order with its items.
type OrderResponse struct {
	ID           int64               `json:"id"`
	User         int64               `json:"user"`
	DeliveryCrew *int64              `json:"delivery_crew"`
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	Date         time.Time           `json:"date"`
	OrderItems   []OrderItemResponse `json:"order_items"`
}
