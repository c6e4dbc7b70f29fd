package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserEmailExists   = errors.New("email already registered")

	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
