package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
	PrincipalFn    func(context.Context, int64) (model.Principal, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Principal resolves a customer principal for the given user.
func (s AuthFacadeStub) Principal(ctx context.Context, userID int64) (model.Principal, error) {
	if s.PrincipalFn != nil {
		return s.PrincipalFn(ctx, userID)
	}
	return model.Principal{UserID: userID, Roles: model.RoleSet{model.RoleCustomer}}, nil
}

// MenuFacadeStub provides controllable behaviour for menu endpoints.
type MenuFacadeStub struct {
	MenuItemsFn      func(context.Context, string) ([]model.MenuItem, error)
	MenuItemFn       func(context.Context, int64) (*model.MenuItem, error)
	CreateItemFn     func(context.Context, model.Principal, string, decimal.Decimal, bool, int64) (*model.MenuItem, error)
	UpdateItemFn     func(context.Context, model.Principal, *model.MenuItem) error
	DeleteItemFn     func(context.Context, model.Principal, int64) error
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CreateCategoryFn func(context.Context, model.Principal, string, string) (*model.Category, error)
}

// MenuItems returns configured items or a single default dish.
func (s MenuFacadeStub) MenuItems(ctx context.Context, categorySlug string) ([]model.MenuItem, error) {
	if s.MenuItemsFn != nil {
		return s.MenuItemsFn(ctx, categorySlug)
	}
	return []model.MenuItem{{ID: 1, Title: "Greek Salad", Price: decimal.RequireFromString("7.50")}}, nil
}

// MenuItem returns the configured item.
func (s MenuFacadeStub) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.MenuItemFn != nil {
		return s.MenuItemFn(ctx, id)
	}
	return &model.MenuItem{ID: id, Title: "Greek Salad", Price: decimal.RequireFromString("7.50")}, nil
}

// CreateMenuItem delegates to the override or echoes a created item.
func (s MenuFacadeStub) CreateMenuItem(ctx context.Context, p model.Principal, title string, price decimal.Decimal, featured bool, categoryID int64) (*model.MenuItem, error) {
	if s.CreateItemFn != nil {
		return s.CreateItemFn(ctx, p, title, price, featured, categoryID)
	}
	return &model.MenuItem{ID: 1, Title: title, Price: price, Featured: featured, CategoryID: categoryID}, nil
}

// UpdateMenuItem executes the configured override.
func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, p model.Principal, item *model.MenuItem) error {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, p, item)
	}
	return nil
}

// DeleteMenuItem executes the configured override.
func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, p model.Principal, id int64) error {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, p, id)
	}
	return nil
}

// Categories returns configured categories.
func (s MenuFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Slug: "mains", Title: "Mains"}}, nil
}

// CreateCategory delegates to the override or echoes a created category.
func (s MenuFacadeStub) CreateCategory(ctx context.Context, p model.Principal, slug, title string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, p, slug, title)
	}
	return &model.Category{ID: 1, Slug: slug, Title: title}, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartItemsFn func(context.Context, int64) ([]model.CartLine, error)
	AddFn       func(context.Context, int64, int64, int32) (*model.CartLine, error)
	ClearFn     func(context.Context, int64) error
}

// CartItems returns configured lines.
func (s CartFacadeStub) CartItems(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.CartItemsFn != nil {
		return s.CartItemsFn(ctx, userID)
	}
	return []model.CartLine{{ID: 1, UserID: userID, MenuItemID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("7.50"), Price: decimal.RequireFromString("7.50")}}, nil
}

// AddToCart delegates to the override or echoes a created line.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, menuItemID, quantity)
	}
	unit := decimal.RequireFromString("7.50")
	return &model.CartLine{ID: 1, UserID: userID, MenuItemID: menuItemID, Quantity: quantity, UnitPrice: unit, Price: unit.Mul(decimal.NewFromInt32(quantity))}, nil
}

// ClearCart executes the configured override.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn      func(context.Context, int64, *time.Time) (*model.Order, error)
	OrdersFn     func(context.Context, model.Principal) ([]model.Order, error)
	OrderFn      func(context.Context, model.Principal, int64) (*model.Order, error)
	AssignFn     func(context.Context, model.Principal, int64, int64) (*model.Order, error)
	AdvanceFn    func(context.Context, model.Principal, int64, string) (*model.Order, error)
	UpdateDateFn func(context.Context, model.Principal, int64, time.Time) (*model.Order, error)
	DeleteFn     func(context.Context, model.Principal, int64) error
}

// PlaceOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, date *time.Time) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, date)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusUnassigned}, nil
}

// Orders returns predefined orders for the caller.
func (s OrderFacadeStub) Orders(ctx context.Context, p model.Principal) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, p)
	}
	return []model.Order{{ID: 1, UserID: p.UserID}}, nil
}

// Order returns the configured order.
func (s OrderFacadeStub) Order(ctx context.Context, p model.Principal, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, p, orderID)
	}
	return &model.Order{ID: orderID, UserID: p.UserID, Status: model.OrderStatusUnassigned}, nil
}

// AssignDelivery delegates to the override.
func (s OrderFacadeStub) AssignDelivery(ctx context.Context, p model.Principal, orderID, crewID int64) (*model.Order, error) {
	if s.AssignFn != nil {
		return s.AssignFn(ctx, p, orderID, crewID)
	}
	return &model.Order{ID: orderID, DeliveryCrewID: &crewID, Status: model.OrderStatusAssigned}, nil
}

// AdvanceOrderStatus delegates to the override.
func (s OrderFacadeStub) AdvanceOrderStatus(ctx context.Context, p model.Principal, orderID int64, status string) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, p, orderID, status)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatus(status)}, nil
}

// UpdateOrderDate delegates to the override.
func (s OrderFacadeStub) UpdateOrderDate(ctx context.Context, p model.Principal, orderID int64, date time.Time) (*model.Order, error) {
	if s.UpdateDateFn != nil {
		return s.UpdateDateFn(ctx, p, orderID, date)
	}
	return &model.Order{ID: orderID, UserID: p.UserID, Date: date}, nil
}

// DeleteOrder delegates to the override.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, p model.Principal, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, p, orderID)
	}
	return nil
}

// GroupFacadeStub provides controllable behaviour for group endpoints.
type GroupFacadeStub struct {
	ManagersFn   func(context.Context, model.Principal) ([]model.User, error)
	AssignMgrFn  func(context.Context, model.Principal, int64) error
	RemoveMgrFn  func(context.Context, model.Principal, int64) error
	CrewFn       func(context.Context, model.Principal) ([]model.User, error)
	AssignCrewFn func(context.Context, model.Principal, int64) error
	RemoveCrewFn func(context.Context, model.Principal, int64) error
}

// Managers returns configured members.
func (s GroupFacadeStub) Managers(ctx context.Context, p model.Principal) ([]model.User, error) {
	if s.ManagersFn != nil {
		return s.ManagersFn(ctx, p)
	}
	return []model.User{{ID: 2, Login: "manager"}}, nil
}

// AssignManager delegates to the override.
func (s GroupFacadeStub) AssignManager(ctx context.Context, p model.Principal, userID int64) error {
	if s.AssignMgrFn != nil {
		return s.AssignMgrFn(ctx, p, userID)
	}
	return nil
}

// RemoveManager delegates to the override.
func (s GroupFacadeStub) RemoveManager(ctx context.Context, p model.Principal, userID int64) error {
	if s.RemoveMgrFn != nil {
		return s.RemoveMgrFn(ctx, p, userID)
	}
	return nil
}

// DeliveryCrew returns configured members.
func (s GroupFacadeStub) DeliveryCrew(ctx context.Context, p model.Principal) ([]model.User, error) {
	if s.CrewFn != nil {
		return s.CrewFn(ctx, p)
	}
	return []model.User{{ID: 3, Login: "crew"}}, nil
}

// AssignDeliveryCrew delegates to the override.
func (s GroupFacadeStub) AssignDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error {
	if s.AssignCrewFn != nil {
		return s.AssignCrewFn(ctx, p, userID)
	}
	return nil
}

// RemoveDeliveryCrew delegates to the override.
func (s GroupFacadeStub) RemoveDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error {
	if s.RemoveCrewFn != nil {
		return s.RemoveCrewFn(ctx, p, userID)
	}
	return nil
}

// RestaurantFacadeStub aggregates facade dependencies for HTTP layer tests.
type RestaurantFacadeStub struct {
	AuthFacadeStub
	MenuFacadeStub
	CartFacadeStub
	OrderFacadeStub
	GroupFacadeStub
}

// MonitorFacadeStub mimics worker interactions with the restaurant facade.
type MonitorFacadeStub struct {
	Batches [][]model.Order
	StaleFn func(context.Context, time.Duration) ([]model.Order, error)
	AgeSeen []time.Duration
	mu      sync.Mutex
	calls   int32
}

// Lock exposes internal mutex for external synchronization.
func (s *MonitorFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *MonitorFacadeStub) Unlock() { s.mu.Unlock() }

// StaleUnassignedOrders returns batches from the configured queue.
func (s *MonitorFacadeStub) StaleUnassignedOrders(ctx context.Context, age time.Duration) ([]model.Order, error) {
	s.mu.Lock()
	s.AgeSeen = append(s.AgeSeen, age)
	s.mu.Unlock()
	if s.StaleFn != nil {
		return s.StaleFn(ctx, age)
	}
	call := atomic.AddInt32(&s.calls, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}
