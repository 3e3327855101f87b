package service

import (
	"context"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/domains/post"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetPublishedBySlug(ctx context.Context, slug string) (*category.Category, error) {
	entity, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Unpublished categories read as absent on public pages.
	if !post.IsCategoryVisible(entity) {
		return nil, category.ErrCategoryNotFound
	}

	return entity, nil
}
