package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// RolesUseCase manages group membership: who is a manager and who belongs to
// the delivery crew. Manager membership is controlled by admins; delivery
// crew membership by managers and admins.
type RolesUseCase struct {
	users repository.UserRepository
}

// NewRolesUseCase constructs RolesUseCase.
func NewRolesUseCase(users repository.UserRepository) *RolesUseCase {
	return &RolesUseCase{users: users}
}

// ListManagers returns all users holding the manager role.
func (u *RolesUseCase) ListManagers(ctx context.Context, p model.Principal) ([]model.User, error) {
	if !p.Roles.Has(model.RoleAdmin) {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.ListByRole(ctx, model.RoleManager)
}

// AssignManager grants the manager role to a user.
func (u *RolesUseCase) AssignManager(ctx context.Context, p model.Principal, userID int64) error {
	if !p.Roles.Has(model.RoleAdmin) {
		return domainErrors.ErrForbidden
	}
	return u.grant(ctx, userID, model.RoleManager)
}

// RemoveManager revokes the manager role from a user.
func (u *RolesUseCase) RemoveManager(ctx context.Context, p model.Principal, userID int64) error {
	if !p.Roles.Has(model.RoleAdmin) {
		return domainErrors.ErrForbidden
	}
	return u.revoke(ctx, userID, model.RoleManager)
}

// ListDeliveryCrew returns all users holding the delivery_crew role.
func (u *RolesUseCase) ListDeliveryCrew(ctx context.Context, p model.Principal) ([]model.User, error) {
	if !p.Roles.IsStaff() {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.ListByRole(ctx, model.RoleDeliveryCrew)
}

// AssignDeliveryCrew grants the delivery_crew role to a user.
func (u *RolesUseCase) AssignDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error {
	if !p.Roles.IsStaff() {
		return domainErrors.ErrForbidden
	}
	return u.grant(ctx, userID, model.RoleDeliveryCrew)
}

// RemoveDeliveryCrew revokes the delivery_crew role from a user.
func (u *RolesUseCase) RemoveDeliveryCrew(ctx context.Context, p model.Principal, userID int64) error {
	if !p.Roles.IsStaff() {
		return domainErrors.ErrForbidden
	}
	return u.revoke(ctx, userID, model.RoleDeliveryCrew)
}

func (u *RolesUseCase) grant(ctx context.Context, userID int64, role model.Role) error {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.users.AddRole(ctx, userID, role)
}

func (u *RolesUseCase) revoke(ctx context.Context, userID int64, role model.Role) error {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.users.RemoveRole(ctx, userID, role)
}
