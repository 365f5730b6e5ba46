package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact lifecycle states.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// Priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Contact struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone,omitempty" db:"phone"`
	Subject   string     `json:"subject" db:"subject"`
	Message   string     `json:"message" db:"message"`
	Service   string     `json:"service,omitempty" db:"service"`
	Status    string     `json:"status" db:"status"`
	Priority  string     `json:"priority" db:"priority"`
	IPAddress string     `json:"ipAddress,omitempty" db:"ip_address"`
	UserAgent string     `json:"userAgent,omitempty" db:"user_agent"`
	RepliedAt *time.Time `json:"repliedAt" db:"replied_at"`
	RepliedBy *uuid.UUID `json:"repliedBy" db:"replied_by"`
	Notes     string     `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// Receipt is the trimmed record returned to the submitter; internal
// triage fields stay private.
type Receipt struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Contact) Receipt() Receipt {
	return Receipt{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		CreatedAt: c.CreatedAt,
	}
}
