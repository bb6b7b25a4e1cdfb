package notify

import (
	"context"

	"go.uber.org/zap"
)

// DevMailer logs instead of sending. Used outside production.
type DevMailer struct {
	log *zap.Logger
}

func NewDevMailer(log *zap.Logger) *DevMailer {
	return &DevMailer{log: log}
}

func (d *DevMailer) SendEmail(_ context.Context, msg EmailMessage) error {
	d.log.Info("DEV MAIL (not sent)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}

// DevSMSSender logs instead of sending.
type DevSMSSender struct {
	log *zap.Logger
}

func NewDevSMSSender(log *zap.Logger) *DevSMSSender {
	return &DevSMSSender{log: log}
}

func (d *DevSMSSender) SendSMS(_ context.Context, msg SMSMessage) error {
	d.log.Info("DEV SMS (not sent)",
		zap.String("to", msg.To),
		zap.String("body", msg.Body),
	)
	return nil
}
