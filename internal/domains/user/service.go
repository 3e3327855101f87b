package user

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// UpdateProfile always targets the viewer.
	UpdateProfile(ctx context.Context, viewerID uuid.UUID, req UpdateProfileRequest) (*User, error)
}
