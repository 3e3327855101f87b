package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"blogicum-backend/internal/domains/user"
	"blogicum-backend/internal/infrastructure/email"
	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

type taskHandlers struct {
	users    user.Repository
	notifier email.Notifier
}

// HandleCommentNotify tells a post's author about a new comment. A
// recipient that no longer exists drops the task instead of retrying it.
func (h *taskHandlers) HandleCommentNotify(ctx context.Context, t *asynq.Task) error {
	var payload queue.CommentNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", queue.TypeCommentNotify, err)
	}

	recipient, err := h.users.GetByID(ctx, payload.AuthorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			logger.Warn("comment notification dropped, recipient gone", map[string]interface{}{
				"author_id": payload.AuthorID.String(),
			})
			return nil
		}
		return err
	}

	return h.notifier.NotifyNewComment(ctx, recipient, payload.PostID, payload.CommentID)
}
