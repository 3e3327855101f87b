package email

import (
	"context"

	"blogicum-backend/internal/domains/user"
	"blogicum-backend/pkg/logger"

	"github.com/google/uuid"
)

// Notifier delivers comment notifications to post authors. The real
// transport lives with the mail provider; the worker only needs the
// contract.
type Notifier interface {
	NotifyNewComment(ctx context.Context, recipient *user.User, postID, commentID uuid.UUID) error
}

// LogNotifier is the development delivery path: it records the
// notification instead of sending mail.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyNewComment(_ context.Context, recipient *user.User, postID, commentID uuid.UUID) error {
	logger.Info("comment notification", map[string]interface{}{
		"recipient": recipient.Email,
		"post_id":   postID.String(),
		"comment":   commentID.String(),
	})
	return nil
}
