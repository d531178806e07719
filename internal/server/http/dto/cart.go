package dto

import "github.com/shopspring/decimal"

// CartAddRequest asks to put a menu item into the cart.
type CartAddRequest struct {
	MenuItemID int64 `json:"menuitem" binding:"required"`
	Quantity   int32 `json:"quantity"`
}

// CartLineResponse is the public shape of one cart line.
type CartLineResponse struct {
	ID        int64           `json:"id"`
	User      int64           `json:"user"`
	MenuItem  int64           `json:"menuitem"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Price     decimal.Decimal `json:"price"`
}
