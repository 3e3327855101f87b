package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreatePostRequest carries the author-submitted fields of a new post.
// The author itself is never submitted; it is taken from the viewer.
type CreatePostRequest struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PubDate     time.Time  `json:"pubDate"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	LocationID  *uuid.UUID `json:"locationId"`
	ImageURL    *string    `json:"imageUrl"`
	IsPublished *bool      `json:"isPublished"` // defaults to true
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.PubDate, validation.Required),
	)
}

// UpdatePostRequest mirrors CreatePostRequest; all fields are rewritten.
type UpdatePostRequest struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PubDate     time.Time  `json:"pubDate"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	LocationID  *uuid.UUID `json:"locationId"`
	ImageURL    *string    `json:"imageUrl"`
	IsPublished *bool      `json:"isPublished"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.PubDate, validation.Required),
	)
}
