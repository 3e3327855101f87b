package user

import "errors"

const (
	ErrCodeUserNotFound      = "USR001"
	ErrCodeDuplicateUsername = "USR002"
	ErrCodeInvalidInput      = "USR003"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidInput      = errors.New("invalid profile input")
)
