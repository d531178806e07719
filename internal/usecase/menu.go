package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// MenuUseCase exposes the menu catalog. Reads are open to any authenticated
// user, writes to managers and admins only.
type MenuUseCase struct {
	menu repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

// ListItems returns menu items, optionally narrowed to one category slug.
func (u *MenuUseCase) ListItems(ctx context.Context, categorySlug string) ([]model.MenuItem, error) {
	return u.menu.ListItems(ctx, categorySlug)
}

// GetItem returns a single menu item.
func (u *MenuUseCase) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := u.menu.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// CreateItem adds a dish to the menu.
func (u *MenuUseCase) CreateItem(ctx context.Context, p model.Principal, title string, price decimal.Decimal, featured bool, categoryID int64) (*model.MenuItem, error) {
	if !p.Roles.IsStaff() {
		return nil, domainErrors.ErrForbidden
	}
	title = strings.TrimSpace(title)
	if title == "" || price.IsNegative() {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.menu.CreateItem(ctx, title, price, featured, categoryID)
}

// UpdateItem replaces a menu item's fields.
func (u *MenuUseCase) UpdateItem(ctx context.Context, p model.Principal, item *model.MenuItem) error {
	if !p.Roles.IsStaff() {
		return domainErrors.ErrForbidden
	}
	err := u.menu.UpdateItem(ctx, item)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.ErrItemNotFound
	}
	return err
}

// DeleteItem removes a dish from the menu.
func (u *MenuUseCase) DeleteItem(ctx context.Context, p model.Principal, id int64) error {
	if !p.Roles.IsStaff() {
		return domainErrors.ErrForbidden
	}
	err := u.menu.DeleteItem(ctx, id)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.ErrItemNotFound
	}
	return err
}

// ListCategories returns all categories.
func (u *MenuUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.menu.ListCategories(ctx)
}

// CreateCategory adds a category.
func (u *MenuUseCase) CreateCategory(ctx context.Context, p model.Principal, slug, title string) (*model.Category, error) {
	if !p.Roles.IsStaff() {
		return nil, domainErrors.ErrForbidden
	}
	return u.menu.CreateCategory(ctx, strings.TrimSpace(slug), strings.TrimSpace(title))
}
