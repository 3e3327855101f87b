package service

import (
	"context"
	"fmt"
	"time"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/domains/user"
	"blogicum-backend/pkg/pagination"

	"github.com/google/uuid"
)

// PostService assembles every post-centric page and owns post mutations.
// Each page type is one explicit composition of repository calls and
// visibility checks; nothing is inherited or implied.
type PostService struct {
	posts      post.Repository
	comments   comment.Repository
	users      user.Repository
	categories category.Service
	pageSize   int
}

func NewPostService(
	posts post.Repository,
	comments comment.Repository,
	users user.Repository,
	categories category.Service,
	pageSize int,
) *PostService {
	return &PostService{
		posts:      posts,
		comments:   comments,
		users:      users,
		categories: categories,
		pageSize:   pageSize,
	}
}

func (s *PostService) Index(ctx context.Context, page pagination.PageRequest) (pagination.Page[post.Post], error) {
	page = page.Normalize(s.pageSize)

	items, total, err := s.posts.List(ctx, post.PublishedFeed(time.Now(), page.Limit(), page.Offset()))
	if err != nil {
		return pagination.Page[post.Post]{}, err
	}

	return pagination.NewPage(items, page, total), nil
}

func (s *PostService) CategoryFeed(ctx context.Context, slug string, page pagination.PageRequest) (*category.Category, pagination.Page[post.Post], error) {
	cat, err := s.categories.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, pagination.Page[post.Post]{}, err
	}

	page = page.Normalize(s.pageSize)

	filter := post.PublishedFeed(time.Now(), page.Limit(), page.Offset())
	filter.CategoryID = &cat.ID

	items, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, pagination.Page[post.Post]{}, err
	}

	return cat, pagination.NewPage(items, page, total), nil
}

func (s *PostService) ProfileFeed(ctx context.Context, username string, viewerID uuid.UUID, page pagination.PageRequest) (*user.User, pagination.Page[post.Post], error) {
	owner, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, pagination.Page[post.Post]{}, err
	}

	page = page.Normalize(s.pageSize)

	filter := post.FeedFilter{
		AuthorID: &owner.ID,
		Now:      time.Now(),
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	}
	// Owners browsing their own profile see everything, drafts and
	// scheduled posts included. Everyone else gets the public subset.
	// Category status never hides a post from its author's profile.
	if post.RestrictProfileFeed(owner.ID, viewerID) {
		filter.Published = true
		filter.Actual = true
	}

	items, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, pagination.Page[post.Post]{}, err
	}

	return owner, pagination.NewPage(items, page, total), nil
}

func (s *PostService) Detail(ctx context.Context, id, viewerID uuid.UUID) (*post.DetailPage, error) {
	entity, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A post the viewer may not see reads as absent, not forbidden.
	if !post.IsVisible(entity, viewerID, time.Now()) {
		return nil, post.ErrPostNotFound
	}

	comments, err := s.comments.ListByPost(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	return &post.DetailPage{
		Post:     entity,
		Comments: comments,
		Form:     comment.Form{},
	}, nil
}

func (s *PostService) Create(ctx context.Context, viewerID uuid.UUID, req post.CreatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", post.ErrInvalidInput, err)
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	entity := &post.Post{
		ID:          uuid.New(),
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     req.PubDate,
		AuthorID:    viewerID,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		ImageURL:    req.ImageURL,
		IsPublished: isPublished,
		CreatedAt:   time.Now(),
	}

	return s.posts.Create(ctx, entity)
}

func (s *PostService) Update(ctx context.Context, viewerID, id uuid.UUID, req post.UpdatePostRequest) (*post.Post, error) {
	// Single fetch serves both the ownership check and the write.
	entity, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if entity.AuthorID != viewerID {
		return nil, post.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", post.ErrInvalidInput, err)
	}

	entity.Title = req.Title
	entity.Text = req.Text
	entity.PubDate = req.PubDate
	entity.CategoryID = req.CategoryID
	entity.LocationID = req.LocationID
	entity.ImageURL = req.ImageURL
	if req.IsPublished != nil {
		entity.IsPublished = *req.IsPublished
	}

	return s.posts.Update(ctx, entity)
}

func (s *PostService) Delete(ctx context.Context, viewerID, id uuid.UUID) error {
	entity, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if entity.AuthorID != viewerID {
		return post.ErrForbidden
	}

	return s.posts.Delete(ctx, entity.ID)
}
