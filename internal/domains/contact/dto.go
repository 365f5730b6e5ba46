package contact

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var phonePattern = regexp.MustCompile(`^[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}$`)

// SubmitContactRequest is the public contact-form payload.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Service string `json:"service"`
}

func (r SubmitContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email,
		),
		validation.Field(&r.Phone,
			validation.When(r.Phone != "",
				validation.Match(phonePattern).Error("invalid phone number"),
			),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("subject is required"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
		),
	)
}

// SubmitInput adds the request metadata the handler captures.
type SubmitInput struct {
	SubmitContactRequest
	IPAddress string
	UserAgent string
}

// UpdateContactRequest is the admin triage update.
type UpdateContactRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Notes    *string `json:"notes"`
}

func (r UpdateContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.When(r.Status != nil,
				validation.In(StatusNew, StatusRead, StatusReplied, StatusArchived).Error("invalid status"),
			),
		),
		validation.Field(&r.Priority,
			validation.When(r.Priority != nil,
				validation.In(PriorityLow, PriorityMedium, PriorityHigh).Error("invalid priority"),
			),
		),
	)
}

// ListContactsRequest carries the admin list's query parameters. Date
// bounds are inclusive.
type ListContactsRequest struct {
	Page      int        `form:"page"`
	Limit     int        `form:"limit"`
	Status    string     `form:"status"`
	Priority  string     `form:"priority"`
	Search    string     `form:"search"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

func (r ListContactsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusNew, StatusRead, StatusReplied, StatusArchived).Error("invalid status"),
			),
		),
		validation.Field(&r.Priority,
			validation.When(r.Priority != "",
				validation.In(PriorityLow, PriorityMedium, PriorityHigh).Error("invalid priority"),
			),
		),
	)
}

// ListContactsResult pairs a page of contacts with the total count.
type ListContactsResult struct {
	Items []Contact
	Total int
}
