package repository

import (
	"context"

	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// UserRepository describes persistence operations for users and their roles.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash string) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	AddRole(ctx context.Context, userID int64, role model.Role) error
	RemoveRole(ctx context.Context, userID int64, role model.Role) error
}
