package category

import "context"

type Repository interface {
	// GetBySlug returns the category regardless of publication status;
	// callers apply visibility.
	GetBySlug(ctx context.Context, slug string) (*Category, error)
}
