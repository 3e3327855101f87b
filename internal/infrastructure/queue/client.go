package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Enqueuer is what services see; the asynq client satisfies it and tests
// substitute a recorder.
type Enqueuer interface {
	EnqueueCommentNotify(ctx context.Context, payload CommentNotifyPayload) error
}

// Client wraps the asynq producer side.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) EnqueueCommentNotify(ctx context.Context, payload CommentNotifyPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeCommentNotify, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", TypeCommentNotify, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
