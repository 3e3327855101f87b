package comment

import (
	"time"

	"blogicum-backend/internal/domains/user"

	"github.com/google/uuid"
)

// Comment belongs to exactly one post and one author. Deleting either
// parent cascades to the comment. Listings order by CreatedAt ascending.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	PostID    uuid.UUID `json:"postId"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`

	// Author is eager-loaded by listings so the renderer never issues
	// per-comment lookups.
	Author *user.User `json:"author,omitempty"`
}
