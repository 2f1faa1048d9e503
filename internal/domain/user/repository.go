package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ListEmployees(ctx context.Context) ([]User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
