package comment

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// Create persists a comment by the viewer under the post identified
	// by postID, which must exist.
	Create(ctx context.Context, viewerID, postID uuid.UUID, req SubmitRequest) (*Comment, error)
	// Update edits a comment resolved under (postID, commentID). Only
	// the comment's author can reach it; for anyone else it is absent.
	Update(ctx context.Context, viewerID, postID, commentID uuid.UUID, req SubmitRequest) (*Comment, error)
	// Delete removes the viewer's own comment; non-authors get
	// ErrForbidden.
	Delete(ctx context.Context, viewerID, postID, commentID uuid.UUID) error
}
