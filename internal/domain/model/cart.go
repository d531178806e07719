package model

import "github.com/shopspring/decimal"

// CartLine is one pending line in a user's cart. UnitPrice is captured when
// the item is first added and survives quantity accumulation; Price is always
// UnitPrice multiplied by Quantity.
type CartLine struct {
	ID         int64
	UserID     int64
	MenuItemID int64
	Quantity   int32
	UnitPrice  decimal.Decimal
	Price      decimal.Decimal
}
