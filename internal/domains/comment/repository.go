package comment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) (*Comment, error)
	// GetForPost resolves a comment scoped to its parent post: a comment
	// id that exists under a different post is not found.
	GetForPost(ctx context.Context, postID, commentID uuid.UUID) (*Comment, error)
	Update(ctx context.Context, c *Comment) (*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByPost returns the post's comments ordered by creation time
	// ascending, authors eager-loaded.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
}
