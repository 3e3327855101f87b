package response

import "blogicum-backend/pkg/pagination"

// PageMeta converts a pagination window into response metadata.
func PageMeta[T any](p pagination.Page[T]) *Meta {
	return &Meta{
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}
