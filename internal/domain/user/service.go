package user

import (
	"context"
)

type UserService interface {
	// ListEmployees lists employee accounts for the admin report filters
	ListEmployees(ctx context.Context) (ListEmployeeResponse, error)

	// ChangePassword replaces the caller's password after checking the
	// current one
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
