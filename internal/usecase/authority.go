package usecase

import (
	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// TransitionAuthority decides which actor may perform which order mutation.
// Every order write goes through it; the rules are evaluated against the
// caller's role set and the order's current owner and assignee.
type TransitionAuthority struct{}

// NewTransitionAuthority constructs TransitionAuthority.
func NewTransitionAuthority() *TransitionAuthority {
	return &TransitionAuthority{}
}

// CanView permits the owner, the assigned crew member, and managers/admins.
func (TransitionAuthority) CanView(p model.Principal, order *model.Order) error {
	if order.UserID == p.UserID || p.Roles.IsStaff() {
		return nil
	}
	if order.DeliveryCrewID != nil && *order.DeliveryCrewID == p.UserID {
		return nil
	}
	return domainErrors.ErrForbidden
}

// CanUpdateContent permits the owning customer to edit order content, and
// only while no delivery crew has been assigned. After assignment content is
// frozen for everyone.
func (TransitionAuthority) CanUpdateContent(p model.Principal, order *model.Order) error {
	if order.UserID != p.UserID {
		return domainErrors.ErrForbidden
	}
	if order.Status != model.OrderStatusUnassigned {
		return domainErrors.ErrForbidden
	}
	return nil
}

// CanAssignCrew permits managers and admins to set or change the delivery
// crew. Whether the assignee actually holds the delivery_crew role is checked
// by the caller against the user record.
func (TransitionAuthority) CanAssignCrew(p model.Principal) error {
	if !p.Roles.IsStaff() {
		return domainErrors.ErrForbidden
	}
	return nil
}

// CanAdvanceStatus permits the assigned crew member to move the order one
// step forward. Values outside the enumeration and non-forward moves are
// rejected with ErrInvalidStatus, never silently coerced.
func (TransitionAuthority) CanAdvanceStatus(p model.Principal, order *model.Order, next model.OrderStatus) error {
	if _, ok := model.ParseOrderStatus(string(next)); !ok {
		return domainErrors.ErrInvalidStatus
	}
	if order.DeliveryCrewID == nil || *order.DeliveryCrewID != p.UserID {
		return domainErrors.ErrForbidden
	}
	if !order.Status.CanAdvanceTo(next) {
		return domainErrors.ErrInvalidStatus
	}
	return nil
}

// CanDelete permits the owning customer and managers/admins at any status.
func (TransitionAuthority) CanDelete(p model.Principal, order *model.Order) error {
	if order.UserID == p.UserID || p.Roles.IsStaff() {
		return nil
	}
	return domainErrors.ErrForbidden
}
