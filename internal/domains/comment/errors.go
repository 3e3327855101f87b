package comment

import "errors"

const (
	ErrCodeCommentNotFound = "CMT001"
	ErrCodeForbidden       = "CMT002"
	ErrCodeInvalidInput    = "CMT003"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrForbidden       = errors.New("not the author of this comment")
	ErrInvalidInput    = errors.New("invalid comment input")
)
