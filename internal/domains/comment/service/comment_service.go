package service

import (
	"context"
	"fmt"
	"time"

	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/pkg/logger"

	"github.com/google/uuid"
)

type CommentService struct {
	comments comment.Repository
	posts    post.Repository
	enqueuer queue.Enqueuer
}

// NewCommentService builds the comment mutation service. enqueuer may be
// nil when notifications are disabled.
func NewCommentService(comments comment.Repository, posts post.Repository, enqueuer queue.Enqueuer) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		enqueuer: enqueuer,
	}
}

func (s *CommentService) Create(ctx context.Context, viewerID, postID uuid.UUID, req comment.SubmitRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", comment.ErrInvalidInput, err)
	}

	// Resolve the parent once; its author id feeds the notification.
	parent, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	entity := &comment.Comment{
		ID:        uuid.New(),
		Text:      req.Text,
		PostID:    parent.ID,
		AuthorID:  viewerID,
		CreatedAt: time.Now(),
	}

	created, err := s.comments.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	// Notification is best-effort; the comment is already persisted.
	if s.enqueuer != nil {
		payload := queue.CommentNotifyPayload{
			CommentID: created.ID,
			PostID:    parent.ID,
			AuthorID:  parent.AuthorID,
		}
		if err := s.enqueuer.EnqueueCommentNotify(ctx, payload); err != nil {
			logger.Error("Create: failed to enqueue comment notification", err)
		}
	}

	return created, nil
}

func (s *CommentService) Update(ctx context.Context, viewerID, postID, commentID uuid.UUID, req comment.SubmitRequest) (*comment.Comment, error) {
	entity, err := s.comments.GetForPost(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	// Updates resolve through an author-scoped lookup: someone else's
	// comment is absent, not forbidden.
	if entity.AuthorID != viewerID {
		return nil, comment.ErrCommentNotFound
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", comment.ErrInvalidInput, err)
	}

	entity.Text = req.Text
	return s.comments.Update(ctx, entity)
}

func (s *CommentService) Delete(ctx context.Context, viewerID, postID, commentID uuid.UUID) error {
	entity, err := s.comments.GetForPost(ctx, postID, commentID)
	if err != nil {
		return err
	}

	if entity.AuthorID != viewerID {
		return comment.ErrForbidden
	}

	return s.comments.Delete(ctx, entity.ID)
}
