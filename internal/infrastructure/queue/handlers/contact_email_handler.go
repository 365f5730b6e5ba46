package handlers

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"brandsite-backend/internal/infrastructure/email"
	"brandsite-backend/internal/infrastructure/queue"
)

// ContactEmailHandler delivers the admin notification for a contact
// submission. SMTP errors are returned so asynq retries them; a payload
// that cannot be decoded is skipped.
func ContactEmailHandler(emailSvc email.EmailService) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.ContactEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry
		}

		return emailSvc.SendContactNotification(ctx, email.ContactNotification{
			Name:      p.Name,
			Email:     p.Email,
			Phone:     p.Phone,
			Subject:   p.Subject,
			Message:   p.Message,
			Service:   p.Service,
			IPAddress: p.IPAddress,
			UserAgent: p.UserAgent,
		})
	}
}
