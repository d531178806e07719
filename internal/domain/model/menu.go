package model

import "github.com/shopspring/decimal"

// Category groups menu items.
type Category struct {
	ID    int64
	Slug  string
	Title string
}

// MenuItem describes a dish offered on the menu. Price is the live catalog
// price; order and cart lines keep their own snapshot of it.
type MenuItem struct {
	ID         int64
	Title      string
	Price      decimal.Decimal
	Featured   bool
	CategoryID int64
}
