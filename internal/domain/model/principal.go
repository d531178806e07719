package model

// Principal identifies an authenticated caller and the roles granted to it.
// Roles are resolved once per request by the identity provider; all
// authorization decisions consult this set rather than ad-hoc lookups.
type Principal struct {
	UserID int64
	Roles  RoleSet
}
