package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// OrderUseCase reads orders and applies role-gated mutations to them.
type OrderUseCase struct {
	orders    repository.OrderRepository
	users     repository.UserRepository
	authority *TransitionAuthority
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, authority *TransitionAuthority) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, authority: authority}
}

// Get returns the order with its items when the caller may see it.
func (u *OrderUseCase) Get(ctx context.Context, p model.Principal, orderID int64) (*model.Order, error) {
	order, err := u.fetch(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.authority.CanView(p, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the orders visible to the caller: managers and admins see all
// orders, delivery crew their assigned ones, customers their own.
func (u *OrderUseCase) List(ctx context.Context, p model.Principal) ([]model.Order, error) {
	switch {
	case p.Roles.IsStaff():
		return u.orders.ListAll(ctx)
	case p.Roles.Has(model.RoleDeliveryCrew):
		return u.orders.ListByCrew(ctx, p.UserID)
	default:
		return u.orders.ListByUser(ctx, p.UserID)
	}
}

// AssignCrew sets or changes the delivery crew of an order. Only managers and
// admins may assign, and only to a user holding the delivery_crew role.
func (u *OrderUseCase) AssignCrew(ctx context.Context, p model.Principal, orderID, crewID int64) (*model.Order, error) {
	if err := u.authority.CanAssignCrew(p); err != nil {
		return nil, err
	}
	if _, err := u.fetch(ctx, orderID); err != nil {
		return nil, err
	}

	crew, err := u.users.GetByID(ctx, crewID)
	if err != nil {
		return nil, err
	}
	if !crew.Roles.Has(model.RoleDeliveryCrew) {
		return nil, domainErrors.ErrInvalidAssignee
	}

	if err := u.orders.UpdateDeliveryCrew(ctx, orderID, crewID); err != nil {
		return nil, err
	}
	return u.fetch(ctx, orderID)
}

// AdvanceStatus moves the order one delivery step forward on behalf of the
// assigned crew member.
func (u *OrderUseCase) AdvanceStatus(ctx context.Context, p model.Principal, orderID int64, raw string) (*model.Order, error) {
	order, err := u.fetch(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next := model.OrderStatus(raw)
	if err := u.authority.CanAdvanceStatus(p, order, next); err != nil {
		return nil, err
	}

	if err := u.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}

// UpdateDate changes the order date, the only mutable piece of order content.
// Allowed to the owner while the order is still unassigned.
func (u *OrderUseCase) UpdateDate(ctx context.Context, p model.Principal, orderID int64, date time.Time) (*model.Order, error) {
	order, err := u.fetch(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.authority.CanUpdateContent(p, order); err != nil {
		return nil, err
	}

	if err := u.orders.UpdateDate(ctx, orderID, date); err != nil {
		return nil, err
	}
	order.Date = date
	return order, nil
}

// Delete removes the order and its items for the owner or a manager/admin.
func (u *OrderUseCase) Delete(ctx context.Context, p model.Principal, orderID int64) error {
	order, err := u.fetch(ctx, orderID)
	if err != nil {
		return err
	}
	if err := u.authority.CanDelete(p, order); err != nil {
		return err
	}
	return u.orders.Delete(ctx, orderID)
}

func (u *OrderUseCase) fetch(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
