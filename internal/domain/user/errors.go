package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrCurrentPasswordMismatch = errors.New("current password does not match")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrInvalidRole             = errors.New("invalid role")
)
