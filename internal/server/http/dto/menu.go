package dto

import "github.com/shopspring/decimal"

// MenuItemRequest carries menu item fields for create/update.
type MenuItemRequest struct {
	Title    string          `json:"title" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Featured bool            `json:"featured"`
	Category int64           `json:"category" binding:"required"`
}

// MenuItemResponse is the public shape of a menu item.
type MenuItemResponse struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category int64           `json:"category"`
}

// CategoryRequest carries category fields for create.
type CategoryRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// CategoryResponse is the public shape of a category.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
