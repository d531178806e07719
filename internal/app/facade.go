package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/usecase"
)

// RestaurantFacade aggregates the use cases behind one surface consumed by
// the HTTP handlers, the auth middleware and the order monitor.
type RestaurantFacade struct {
	auth     *usecase.AuthUseCase
	menu     *usecase.MenuUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	roles    *usecase.RolesUseCase
	monitor  *usecase.MonitorUseCase
}

// NewRestaurantFacade constructs RestaurantFacade.
func NewRestaurantFacade(
	auth *usecase.AuthUseCase,
	menu *usecase.MenuUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	roles *usecase.RolesUseCase,
	monitor *usecase.MonitorUseCase,
) *RestaurantFacade {
	return &RestaurantFacade{auth: auth, menu: menu, cart: cart, checkout: checkout, orders: orders, roles: roles, monitor: monitor}
}

func (f *RestaurantFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *RestaurantFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *RestaurantFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *RestaurantFacade) Principal(ctx context.Context, userID int64) (model.Principal, error) {
	return f.auth.Principal(ctx, userID)
}

func (f *RestaurantFacade) MenuItems(ctx context.Context, categorySlug string) ([]model.MenuItem, error) {
	return f.menu.ListItems(ctx, categorySlug)
}

func (f *RestaurantFacade) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.GetItem(ctx, id)
}

func (f *RestaurantFacade) CreateMenuItem(ctx context.Context, p model.Principal, title string, price decimal.Decimal, featured bool, categoryID int64) (*model.MenuItem, error) {
	return f.menu.CreateItem(ctx, p, title, price, featured, categoryID)
}

func (f *RestaurantFacade) UpdateMenuItem(ctx context.Context, p model.Principal, item *model.MenuItem) error {
	return f.menu.UpdateItem(ctx, p, item)
}

func (f *RestaurantFacade) DeleteMenuItem(ctx context.Context, p model.Principal, id int64) error {
	return f.menu.DeleteItem(ctx, p, id)
}

func (f *RestaurantFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.menu.ListCategories(ctx)
}

func (f *RestaurantFacade) CreateCategory(ctx context.Context, p model.Principal, slug, title string) (*model.Category, error) {
	return f.menu.CreateCategory(ctx, p, slug, title)
}

func (f *RestaurantFacade) CartItems(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.cart.ListItems(ctx, userID)
}

func (f *RestaurantFacade) AddToCart(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error) {
	return f.cart.AddItem(ctx, userID, menuItemID, quantity)
}

func (f *RestaurantFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *RestaurantFacade) PlaceOrder(ctx context.Context, userID int64, date *time.Time) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, userID, date)
}

func (f *RestaurantFacade) Orders(ctx context.Context, p model.Principal) ([]model.Order, error) {
	return f.orders.List(ctx, p)
}

func (f *RestaurantFacade) Order(ctx context.Context, p model.Principal, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, p, orderID)
}

func (f *RestaurantFacade) AssignDelivery(ctx context.Context, p model.Principal, orderID, crewID int64) (*model.Order, error) {
	return f.orders.AssignCrew(ctx, p, orderID, crewID)
}

func (f *RestaurantFacade) AdvanceOrderStatus(ctx context.Context, p model.Principal, orderID int64, status string) (*model.Order, error) {
	return f.orders.AdvanceStatus(ctx, p, orderID, status)
}

func (f *RestaurantFacade) UpdateOrderDate(ctx context.Context, p model.Principal, orderID int64, date time.Time) (*model.Order, error) {
	return f.orders.UpdateDate(ctx, p, orderID, date)
}

func (f *RestaurantFacade) DeleteOrder(ctx context.Context, p model.Principal, orderID int64) error {
	return f.orders.Delete(ctx, p, orderID)
}

func (f *RestaurantFacade) Managers(ctx context.Context, p model.Principal) ([]model.User, error) {
	return f.roles.ListManagers(ctx, p)
}

func (f *RestaurantFacade) AssignManager(ctx context.Context, p model.Principal, userID int64) error {
	return f.roles.AssignManager(ctx, p, userID)
}

func (f *RestaurantFacade) RemoveManager(ctx context.Context, p model.Principal, userID int64) error {
	return f.roles.RemoveManager(ctx, p, userID)
}

func (f *RestaurantFacade) DeliveryCrew(ctx context.Context, p model.Principal) ([]model.User, error) {
	return f.roles.ListDeliveryCrew(ctx, p)
}

func (f *RestaurantFacade) AssignDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error {
	return f.roles.AssignDeliveryCrew(ctx, p, userID)
}

func (f *RestaurantFacade) RemoveDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error {
	return f.roles.RemoveDeliveryCrew(ctx, p, userID)
}

func (f *RestaurantFacade) StaleUnassignedOrders(ctx context.Context, age time.Duration) ([]model.Order, error) {
	return f.monitor.StaleUnassigned(ctx, age)
}
