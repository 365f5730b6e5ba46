package email

import (
	"context"
	"fmt"
	"net/smtp"

	"brandsite-backend/internal/config"
)

// ContactNotification carries a contact-form submission into the admin
// notification email.
type ContactNotification struct {
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Service   string
	IPAddress string
	UserAgent string
}

type EmailService interface {
	SendContactNotification(ctx context.Context, data ContactNotification) error
}

type smtpEmailService struct {
	smtpAddr   string
	from       string
	adminEmail string
}

func NewSMTPEmailService(cfg config.EmailConfig) EmailService {
	return &smtpEmailService{
		smtpAddr:   cfg.SMTPHost + ":" + cfg.SMTPPort,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
	}
}

func (s *smtpEmailService) SendContactNotification(ctx context.Context, data ContactNotification) error {
	subject := "New Contact: " + data.Subject

	orDefault := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}

	body := fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<p><strong>Service Interested:</strong> %s</p>
<hr>
<p><small>IP: %s | User Agent: %s</small></p>`,
		data.Name,
		data.Email,
		orDefault(data.Phone, "Not provided"),
		data.Subject,
		data.Message,
		orDefault(data.Service, "Not specified"),
		data.IPAddress,
		data.UserAgent,
	)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, s.adminEmail, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.from, []string{s.adminEmail}, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
