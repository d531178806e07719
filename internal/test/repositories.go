package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error

	RoleGrants  []RoleChange
	RoleRevokes []RoleChange
}

// RoleChange records a single role grant or revoke.
type RoleChange struct {
	UserID int64
	Role   model.Role
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Add seeds a user with the provided roles and returns it.
func (s *UserRepositoryStub) Add(login string, roles ...model.Role) *model.User {
	user := &model.User{ID: s.Next, Login: login, Roles: roles}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Roles: model.RoleSet{model.RoleCustomer}}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRole returns every stored user holding the role.
func (s *UserRepositoryStub) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var users []model.User
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok && user.Roles.Has(role) {
			users = append(users, *user)
		}
	}
	return users, nil
}

// AddRole records the grant and applies it to the stored user.
func (s *UserRepositoryStub) AddRole(ctx context.Context, userID int64, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	s.RoleGrants = append(s.RoleGrants, RoleChange{UserID: userID, Role: role})
	if user, ok := s.ByID[userID]; ok && !user.Roles.Has(role) {
		user.Roles = append(user.Roles, role)
	}
	return nil
}

// RemoveRole records the revoke and applies it to the stored user.
func (s *UserRepositoryStub) RemoveRole(ctx context.Context, userID int64, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	s.RoleRevokes = append(s.RoleRevokes, RoleChange{UserID: userID, Role: role})
	if user, ok := s.ByID[userID]; ok {
		var kept model.RoleSet
		for _, r := range user.Roles {
			if r != role {
				kept = append(kept, r)
			}
		}
		user.Roles = kept
	}
	return nil
}

// MenuRepositoryStub stores the catalog in-memory for tests.
type MenuRepositoryStub struct {
	Items      map[int64]*model.MenuItem
	Categories []model.Category
	NextItem   int64
	Err        error
}

// NewMenuRepositoryStub constructs stub repository with initialized maps.
func NewMenuRepositoryStub() *MenuRepositoryStub {
	return &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), NextItem: 1}
}

// AddItem seeds a menu item priced as given and returns it.
func (s *MenuRepositoryStub) AddItem(title, price string, categoryID int64) *model.MenuItem {
	item := &model.MenuItem{
		ID:         s.NextItem,
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	}
	s.NextItem++
	s.Items[item.ID] = item
	return item
}

// CreateCategory appends a category.
func (s *MenuRepositoryStub) CreateCategory(ctx context.Context, slug, title string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	category := model.Category{ID: int64(len(s.Categories) + 1), Slug: slug, Title: title}
	s.Categories = append(s.Categories, category)
	return &category, nil
}

// ListCategories returns seeded categories.
func (s *MenuRepositoryStub) ListCategories(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Categories, nil
}

// CreateItem stores a new menu item.
func (s *MenuRepositoryStub) CreateItem(ctx context.Context, title string, price decimal.Decimal, featured bool, categoryID int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	item := &model.MenuItem{ID: s.NextItem, Title: title, Price: price, Featured: featured, CategoryID: categoryID}
	s.NextItem++
	s.Items[item.ID] = item
	return item, nil
}

// GetItem fetches an item or returns not found.
func (s *MenuRepositoryStub) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[id]; ok {
		return item, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListItems returns every stored item regardless of category filter.
func (s *MenuRepositoryStub) ListItems(ctx context.Context, categorySlug string) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var items []model.MenuItem
	for id := int64(1); id < s.NextItem; id++ {
		if item, ok := s.Items[id]; ok {
			items = append(items, *item)
		}
	}
	return items, nil
}

// UpdateItem replaces a stored item.
func (s *MenuRepositoryStub) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[item.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Items[item.ID] = item
	return nil
}

// DeleteItem removes a stored item.
func (s *MenuRepositoryStub) DeleteItem(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// CartRepositoryStub keeps cart lines in-memory and mimics the atomic
// merge-on-add upsert of the real storage.
type CartRepositoryStub struct {
	AddLineFn func(context.Context, int64, int64, int32, decimal.Decimal) (*model.CartLine, error)
	Lines     []model.CartLine
	Next      int64
	Cleared   []int64
	Err       error
}

// AddLine upserts a line keyed on (user, menu item). A merged line keeps the
// unit price snapshotted by the first add.
func (s *CartRepositoryStub) AddLine(ctx context.Context, userID, menuItemID int64, quantity int32, unitPrice decimal.Decimal) (*model.CartLine, error) {
	if s.AddLineFn != nil {
		return s.AddLineFn(ctx, userID, menuItemID, quantity, unitPrice)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Lines {
		line := &s.Lines[i]
		if line.UserID == userID && line.MenuItemID == menuItemID {
			line.Quantity += quantity
			line.Price = line.UnitPrice.Mul(decimal.NewFromInt32(line.Quantity))
			copied := *line
			return &copied, nil
		}
	}
	s.Next++
	line := model.CartLine{
		ID:         s.Next,
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Price:      unitPrice.Mul(decimal.NewFromInt32(quantity)),
	}
	s.Lines = append(s.Lines, line)
	return &line, nil
}

// ListByUser returns the user's lines.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var lines []model.CartLine
	for _, line := range s.Lines {
		if line.UserID == userID {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Clear drops the user's lines and records the invocation.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Cleared = append(s.Cleared, userID)
	var kept []model.CartLine
	for _, line := range s.Lines {
		if line.UserID != userID {
			kept = append(kept, line)
		}
	}
	s.Lines = kept
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFromCartFn       func(context.Context, int64, time.Time) (*model.Order, error)
	GetByIDFn              func(context.Context, int64) (*model.Order, error)
	ListByUserFn           func(context.Context, int64) ([]model.Order, error)
	ListByCrewFn           func(context.Context, int64) ([]model.Order, error)
	ListAllFn              func(context.Context) ([]model.Order, error)
	ListUnassignedBeforeFn func(context.Context, time.Time) ([]model.Order, error)
	UpdateDeliveryCrewFn   func(context.Context, int64, int64) error
	UpdateStatusFn         func(context.Context, int64, model.OrderStatus) error
	UpdateDateFn           func(context.Context, int64, time.Time) error
	DeleteFn               func(context.Context, int64) error

	Orders      []model.Order
	CrewUpdates []CrewAssignment
	StatusCalls []StatusUpdate
	Deleted     []int64
}

// CrewAssignment records an UpdateDeliveryCrew invocation.
type CrewAssignment struct {
	OrderID int64
	CrewID  int64
}

// StatusUpdate records an UpdateStatus invocation.
type StatusUpdate struct {
	OrderID int64
	Status  model.OrderStatus
}

// CreateFromCart delegates to the override or returns a default order.
func (s *OrderRepositoryStub) CreateFromCart(ctx context.Context, userID int64, date time.Time) (*model.Order, error) {
	if s.CreateFromCartFn != nil {
		return s.CreateFromCartFn(ctx, userID, date)
	}
	order := &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusUnassigned, Date: date}
	return order, nil
}

// GetByID returns the matching order from the configured slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders owned by the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var orders []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// ListByCrew returns orders assigned to the crew member.
func (s *OrderRepositoryStub) ListByCrew(ctx context.Context, crewID int64) ([]model.Order, error) {
	if s.ListByCrewFn != nil {
		return s.ListByCrewFn(ctx, crewID)
	}
	var orders []model.Order
	for _, o := range s.Orders {
		if o.DeliveryCrewID != nil && *o.DeliveryCrewID == crewID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// ListAll returns every configured order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// ListUnassignedBefore returns unassigned orders dated before cutoff.
func (s *OrderRepositoryStub) ListUnassignedBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	if s.ListUnassignedBeforeFn != nil {
		return s.ListUnassignedBeforeFn(ctx, cutoff)
	}
	var orders []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusUnassigned && o.Date.Before(cutoff) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// UpdateDeliveryCrew records the assignment.
func (s *OrderRepositoryStub) UpdateDeliveryCrew(ctx context.Context, orderID, crewID int64) error {
	if s.UpdateDeliveryCrewFn != nil {
		return s.UpdateDeliveryCrewFn(ctx, orderID, crewID)
	}
	s.CrewUpdates = append(s.CrewUpdates, CrewAssignment{OrderID: orderID, CrewID: crewID})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			id := crewID
			s.Orders[i].DeliveryCrewID = &id
			if s.Orders[i].Status == model.OrderStatusUnassigned {
				s.Orders[i].Status = model.OrderStatusAssigned
			}
		}
	}
	return nil
}

// UpdateStatus records the status change.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.StatusCalls = append(s.StatusCalls, StatusUpdate{OrderID: orderID, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
		}
	}
	return nil
}

// UpdateDate changes the stored order date.
func (s *OrderRepositoryStub) UpdateDate(ctx context.Context, orderID int64, date time.Time) error {
	if s.UpdateDateFn != nil {
		return s.UpdateDateFn(ctx, orderID, date)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Date = date
		}
	}
	return nil
}

// Delete records the removal.
func (s *OrderRepositoryStub) Delete(ctx context.Context, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	s.Deleted = append(s.Deleted, orderID)
	var kept []model.Order
	for _, o := range s.Orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	s.Orders = kept
	return nil
}
