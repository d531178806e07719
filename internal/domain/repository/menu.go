package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// MenuRepository describes persistence operations for categories and menu items.
type MenuRepository interface {
	CreateCategory(ctx context.Context, slug, title string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	CreateItem(ctx context.Context, title string, price decimal.Decimal, featured bool, categoryID int64) (*model.MenuItem, error)
	GetItem(ctx context.Context, id int64) (*model.MenuItem, error)
	ListItems(ctx context.Context, categorySlug string) ([]model.MenuItem, error)
	UpdateItem(ctx context.Context, item *model.MenuItem) error
	DeleteItem(ctx context.Context, id int64) error
}
