package service

import (
	"context"
	"fmt"

	"blogicum-backend/internal/domains/user"

	"github.com/google/uuid"
)

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) UpdateProfile(ctx context.Context, viewerID uuid.UUID, req user.UpdateProfileRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrInvalidInput, err)
	}

	// The edit target is always the viewer; there is no target id to
	// check ownership against.
	entity, err := s.repo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	entity.Username = req.Username
	entity.FirstName = req.FirstName
	entity.LastName = req.LastName
	entity.Email = req.Email

	return s.repo.UpdateProfile(ctx, entity)
}
