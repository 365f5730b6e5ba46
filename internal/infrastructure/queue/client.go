package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task types understood by the worker.
const (
	TypeContactEmail = "email:contact"
)

// ContactEmailPayload is the serialized form of a contact-notification
// job.
type ContactEmailPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Service   string `json:"service,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// Client enqueues background jobs onto Redis. Enqueue failures are a
// best-effort concern: callers log and move on.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) EnqueueContactEmail(ctx context.Context, payload ContactEmailPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact email payload: %w", err)
	}

	task := asynq.NewTask(TypeContactEmail, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Queue("default")); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeContactEmail, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
