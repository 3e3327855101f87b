package inmemory

import (
	"context"

	"blogicum-backend/internal/domains/category"
)

type categoryStore Store

func (s *categoryStore) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			found := c
			return &found, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}
