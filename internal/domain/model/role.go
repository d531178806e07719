package model

// Role tags a user with a capability group.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleAdmin        Role = "admin"
)

// ParseRole validates a raw role tag.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCustomer, RoleManager, RoleDeliveryCrew, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// RoleSet is the set of roles granted to a principal.
type RoleSet []Role

// Has reports whether the set contains the given role.
func (s RoleSet) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// HasAny reports whether the set contains at least one of the given roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// IsStaff reports manager-level access (manager or admin).
func (s RoleSet) IsStaff() bool {
	return s.HasAny(RoleManager, RoleAdmin)
}
