package usecase

import (
	"testing"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
)

func customer(id int64) model.Principal {
	return model.Principal{UserID: id, Roles: model.RoleSet{model.RoleCustomer}}
}

func manager(id int64) model.Principal {
	return model.Principal{UserID: id, Roles: model.RoleSet{model.RoleManager}}
}

func crewMember(id int64) model.Principal {
	return model.Principal{UserID: id, Roles: model.RoleSet{model.RoleDeliveryCrew}}
}

func assignedOrder(owner, crew int64, status model.OrderStatus) *model.Order {
	return &model.Order{ID: 1, UserID: owner, DeliveryCrewID: &crew, Status: status}
}

func TestAuthorityCanView(t *testing.T) {
	authority := NewTransitionAuthority()
	order := assignedOrder(10, 20, model.OrderStatusAssigned)

	if err := authority.CanView(customer(10), order); err != nil {
		t.Fatalf("owner must see own order: %v", err)
	}
	if err := authority.CanView(crewMember(20), order); err != nil {
		t.Fatalf("assigned crew must see order: %v", err)
	}
	if err := authority.CanView(manager(30), order); err != nil {
		t.Fatalf("manager must see any order: %v", err)
	}
	if err := authority.CanView(customer(40), order); err != domainErrors.ErrForbidden {
		t.Fatalf("stranger must be forbidden, got %v", err)
	}
	if err := authority.CanView(crewMember(50), order); err != domainErrors.ErrForbidden {
		t.Fatalf("unassigned crew must be forbidden, got %v", err)
	}
}

func TestAuthorityCanUpdateContent(t *testing.T) {
	authority := NewTransitionAuthority()

	unassigned := &model.Order{ID: 1, UserID: 10, Status: model.OrderStatusUnassigned}
	if err := authority.CanUpdateContent(customer(10), unassigned); err != nil {
		t.Fatalf("owner may edit unassigned order: %v", err)
	}
	if err := authority.CanUpdateContent(customer(11), unassigned); err != domainErrors.ErrForbidden {
		t.Fatalf("non-owner must be forbidden, got %v", err)
	}
	if err := authority.CanUpdateContent(manager(30), unassigned); err != domainErrors.ErrForbidden {
		t.Fatalf("manager does not edit customer content, got %v", err)
	}

	// Content freezes the moment a crew is assigned, for the owner too.
	frozen := assignedOrder(10, 20, model.OrderStatusAssigned)
	if err := authority.CanUpdateContent(customer(10), frozen); err != domainErrors.ErrForbidden {
		t.Fatalf("assigned order content must be frozen, got %v", err)
	}
}

func TestAuthorityCanAssignCrew(t *testing.T) {
	authority := NewTransitionAuthority()

	if err := authority.CanAssignCrew(manager(30)); err != nil {
		t.Fatalf("manager may assign crew: %v", err)
	}
	admin := model.Principal{UserID: 1, Roles: model.RoleSet{model.RoleAdmin}}
	if err := authority.CanAssignCrew(admin); err != nil {
		t.Fatalf("admin may assign crew: %v", err)
	}
	if err := authority.CanAssignCrew(customer(10)); err != domainErrors.ErrForbidden {
		t.Fatalf("customer must not assign crew, got %v", err)
	}
	if err := authority.CanAssignCrew(crewMember(20)); err != domainErrors.ErrForbidden {
		t.Fatalf("crew must not assign crew, got %v", err)
	}
}

func TestAuthorityCanAdvanceStatus(t *testing.T) {
	authority := NewTransitionAuthority()
	order := assignedOrder(10, 20, model.OrderStatusAssigned)

	if err := authority.CanAdvanceStatus(crewMember(20), order, model.OrderStatusOutForDelivery); err != nil {
		t.Fatalf("assigned crew may advance one step: %v", err)
	}
	if err := authority.CanAdvanceStatus(crewMember(20), order, model.OrderStatusDelivered); err != domainErrors.ErrInvalidStatus {
		t.Fatalf("skipping a step must fail with ErrInvalidStatus, got %v", err)
	}
	if err := authority.CanAdvanceStatus(crewMember(20), order, "COOKING"); err != domainErrors.ErrInvalidStatus {
		t.Fatalf("unknown status must fail with ErrInvalidStatus, got %v", err)
	}
	if err := authority.CanAdvanceStatus(crewMember(99), order, model.OrderStatusOutForDelivery); err != domainErrors.ErrForbidden {
		t.Fatalf("other crew must be forbidden, got %v", err)
	}
	if err := authority.CanAdvanceStatus(customer(10), order, model.OrderStatusOutForDelivery); err != domainErrors.ErrForbidden {
		t.Fatalf("owner must not advance status, got %v", err)
	}
	if err := authority.CanAdvanceStatus(manager(30), order, model.OrderStatusOutForDelivery); err != domainErrors.ErrForbidden {
		t.Fatalf("manager must not advance status, got %v", err)
	}

	unassigned := &model.Order{ID: 2, UserID: 10, Status: model.OrderStatusUnassigned}
	if err := authority.CanAdvanceStatus(crewMember(20), unassigned, model.OrderStatusAssigned); err != domainErrors.ErrForbidden {
		t.Fatalf("no crew assigned, expected ErrForbidden, got %v", err)
	}

	delivered := assignedOrder(10, 20, model.OrderStatusDelivered)
	if err := authority.CanAdvanceStatus(crewMember(20), delivered, model.OrderStatusDelivered); err != domainErrors.ErrInvalidStatus {
		t.Fatalf("delivered order is terminal, got %v", err)
	}
}

func TestAuthorityCanDelete(t *testing.T) {
	authority := NewTransitionAuthority()
	order := assignedOrder(10, 20, model.OrderStatusOutForDelivery)

	if err := authority.CanDelete(customer(10), order); err != nil {
		t.Fatalf("owner may delete at any status: %v", err)
	}
	if err := authority.CanDelete(manager(30), order); err != nil {
		t.Fatalf("manager may delete: %v", err)
	}
	if err := authority.CanDelete(crewMember(20), order); err != domainErrors.ErrForbidden {
		t.Fatalf("assigned crew must not delete, got %v", err)
	}
	if err := authority.CanDelete(customer(40), order); err != domainErrors.ErrForbidden {
		t.Fatalf("stranger must not delete, got %v", err)
	}
}
