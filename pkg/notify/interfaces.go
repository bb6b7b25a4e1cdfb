package notify

import "context"

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// SMSMessage is a single outbound text message.
type SMSMessage struct {
	To   string
	Body string
}

// Mailer delivers email. Implementations are best-effort: callers log
// failures and continue.
type Mailer interface {
	SendEmail(ctx context.Context, msg EmailMessage) error
}

// SMSSender delivers text messages.
type SMSSender interface {
	SendSMS(ctx context.Context, msg SMSMessage) error
}
