package post

import (
	"context"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/user"
	"blogicum-backend/pkg/pagination"

	"github.com/google/uuid"
)

// DetailPage is the assembled context of one post detail view: the post
// with eager relations, its comments oldest-first with authors loaded,
// and an empty comment form descriptor for the renderer.
type DetailPage struct {
	Post     *Post             `json:"post"`
	Comments []comment.Comment `json:"comments"`
	Form     comment.Form      `json:"form"`
}

type Service interface {
	// Index assembles the published feed page.
	Index(ctx context.Context, page pagination.PageRequest) (pagination.Page[Post], error)
	// CategoryFeed assembles the published feed of one category resolved
	// by slug. Unpublished or missing categories are absent.
	CategoryFeed(ctx context.Context, slug string, page pagination.PageRequest) (*category.Category, pagination.Page[Post], error)
	// ProfileFeed assembles a user's post listing. Owners see everything
	// they wrote; other viewers see only published, past-dated posts.
	ProfileFeed(ctx context.Context, username string, viewerID uuid.UUID, page pagination.PageRequest) (*user.User, pagination.Page[Post], error)
	// Detail assembles one post page, or ErrPostNotFound when the post
	// does not exist or is not visible to the viewer.
	Detail(ctx context.Context, id, viewerID uuid.UUID) (*DetailPage, error)

	Create(ctx context.Context, viewerID uuid.UUID, req CreatePostRequest) (*Post, error)
	Update(ctx context.Context, viewerID, id uuid.UUID, req UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, viewerID, id uuid.UUID) error
}
