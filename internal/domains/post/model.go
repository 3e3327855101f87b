package post

import (
	"time"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/domains/location"
	"blogicum-backend/internal/domains/user"

	"github.com/google/uuid"
)

// Post is a publication. IsPublished and PubDate jointly gate visibility;
// a future PubDate makes a scheduled publication. The author sees their
// own posts regardless of either.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PubDate     time.Time  `json:"pubDate"`
	AuthorID    uuid.UUID  `json:"authorId"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	LocationID  *uuid.UUID `json:"locationId,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	IsPublished bool       `json:"isPublished"`
	CreatedAt   time.Time  `json:"createdAt"`

	// Relations eager-loaded by list and detail queries in the same
	// round trip as the post itself.
	Author   *user.User         `json:"author,omitempty"`
	Category *category.Category `json:"category,omitempty"`
	Location *location.Location `json:"location,omitempty"`

	// CommentCount is populated by feed queries via a grouped count
	// aggregate, never by joining comment rows into the result.
	CommentCount int64 `json:"commentCount"`
}
