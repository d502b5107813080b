package notification

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/evening-academy/academy-management/internal"
)

// Mailer sends transactional email over SMTP. With mail disabled in config it
// degrades to logging, which keeps local development quiet.
type Mailer struct {
	cfg    internal.MailConfig
	dialer *gomail.Dialer
	logger *slog.Logger
}

func NewMailer(cfg internal.MailConfig, logger *slog.Logger) *Mailer {
	m := &Mailer{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Enabled {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	if !m.cfg.Enabled {
		m.logger.Info("mail disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.logger.Info("mail sent", "to", to, "subject", subject)
	return nil
}
