package queue

import "github.com/google/uuid"

// Task type names shared between the API (producer) and the worker
// (consumer).
const (
	TypeCommentNotify = "comment:notify"
)

// CommentNotifyPayload tells the worker which comment to notify the post
// author about.
type CommentNotifyPayload struct {
	CommentID uuid.UUID `json:"commentId"`
	PostID    uuid.UUID `json:"postId"`
	AuthorID  uuid.UUID `json:"authorId"` // post author, the recipient
}
