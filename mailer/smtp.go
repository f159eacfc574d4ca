package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

// SMTPConfig is injected at construction; credentials never live in code.
type SMTPConfig struct {
	Host       string
	Port       string
	Username   string
	Password   string
	SenderName string
}

func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host not set")
	}
	if c.Port == "" {
		return fmt.Errorf("SMTP port not set")
	}
	if c.Username == "" {
		return fmt.Errorf("SMTP username not set")
	}
	if c.Password == "" {
		return fmt.Errorf("SMTP password not set")
	}
	return nil
}

type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) (SendResult, error) {
	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := []byte(
		"From: " + s.cfg.SenderName + " <" + s.cfg.Username + ">\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	// smtp.SendMail has no context hook; run it on the side so the caller's
	// deadline is honored.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.cfg.Username, []string{to}, msg)
	}()

	select {
	case <-ctx.Done():
		return SendResult{}, ctx.Err()
	case err := <-done:
		if err != nil {
			return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
		}
	}

	return SendResult{
		MessageID: "smtp-" + uuid.NewString(),
		SentAt:    time.Now(),
	}, nil
}
