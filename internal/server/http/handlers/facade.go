package handlers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	Principal(ctx context.Context, userID int64) (model.Principal, error)
}

// MenuFacade exposes the menu catalog.
type MenuFacade interface {
	MenuItems(ctx context.Context, categorySlug string) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, p model.Principal, title string, price decimal.Decimal, featured bool, categoryID int64) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, p model.Principal, item *model.MenuItem) error
	DeleteMenuItem(ctx context.Context, p model.Principal, id int64) error
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, p model.Principal, slug, title string) (*model.Category, error)
}

// CartFacade exposes cart operations.
type CartFacade interface {
	CartItems(ctx context.Context, userID int64) ([]model.CartLine, error)
	AddToCart(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error)
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade exposes checkout and the gated order lifecycle.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, date *time.Time) (*model.Order, error)
	Orders(ctx context.Context, p model.Principal) ([]model.Order, error)
	Order(ctx context.Context, p model.Principal, orderID int64) (*model.Order, error)
	AssignDelivery(ctx context.Context, p model.Principal, orderID, crewID int64) (*model.Order, error)
	AdvanceOrderStatus(ctx context.Context, p model.Principal, orderID int64, status string) (*model.Order, error)
	UpdateOrderDate(ctx context.Context, p model.Principal, orderID int64, date time.Time) (*model.Order, error)
	DeleteOrder(ctx context.Context, p model.Principal, orderID int64) error
}

// GroupFacade exposes manager and delivery crew membership management.
type GroupFacade interface {
	Managers(ctx context.Context, p model.Principal) ([]model.User, error)
	AssignManager(ctx context.Context, p model.Principal, userID int64) error
	RemoveManager(ctx context.Context, p model.Principal, userID int64) error
	DeliveryCrew(ctx context.Context, p model.Principal) ([]model.User, error)
	AssignDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error
	RemoveDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error
}

// RestaurantFacade aggregates the full set of operations used across handlers.
type RestaurantFacade interface {
	AuthFacade
	MenuFacade
	CartFacade
	OrderFacade
	GroupFacade
}
