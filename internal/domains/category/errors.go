package category

import "errors"

const (
	ErrCodeCategoryNotFound = "CAT001"
)

var ErrCategoryNotFound = errors.New("category not found")
