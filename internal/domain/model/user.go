package model

import "time"

// User represents a registered account: customer, staff or delivery crew.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Roles        RoleSet
	CreatedAt    time.Time
}
