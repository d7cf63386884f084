package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrFinanceRoleRequired    = errors.New("finance role required")
	ErrCannotModifyUser       = errors.New("not allowed to modify this user")
)
