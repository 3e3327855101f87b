package category

import "context"

type Service interface {
	// GetPublishedBySlug resolves a category for public pages. An
	// unpublished category is reported as absent, not as forbidden.
	GetPublishedBySlug(ctx context.Context, slug string) (*Category, error)
}
