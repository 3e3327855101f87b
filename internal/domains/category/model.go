package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups posts and is managed through the admin surface; this
// service only reads it.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}
