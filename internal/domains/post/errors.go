package post

import "errors"

const (
	ErrCodePostNotFound = "PST001"
	ErrCodeForbidden    = "PST002"
	ErrCodeInvalidInput = "PST003"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("not the author of this post")
	ErrInvalidInput = errors.New("invalid post input")
)
