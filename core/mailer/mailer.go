package mailer

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message is a single outbound email.
type Message struct {
	// To lists the recipient addresses.
	To []string
	// Subject is the subject line.
	Subject string
	// HTMLBody is the message body, sent as text/html.
	HTMLBody string
	// Attachments lists paths of files to attach.
	Attachments []string
}

// Mailer defines the interface for sending email.
type Mailer interface {
	// Send delivers one message. It returns an error if delivery fails for any recipient.
	Send(ctx context.Context, msg Message) error
}

// NewMailer creates a new SMTP mailer based on the configuration.
func NewMailer(cfg Config) (Mailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("mail host is required")
	}
	if cfg.SenderAddress == "" {
		return nil, errors.New("mail sender address is required")
	}

	port := cfg.Port
	if port <= 0 {
		port = 587
	}

	return &smtpMailer{
		dialer:     gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		senderName: cfg.SenderName,
		senderAddr: cfg.SenderAddress,
	}, nil
}

type smtpMailer struct {
	dialer     *gomail.Dialer
	senderName string
	senderAddr string
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	// gomail has no context support, so honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return errors.New("message has no recipients")
	}

	out := gomail.NewMessage()
	out.SetAddressHeader("From", m.senderAddr, m.senderName)
	out.SetHeader("To", msg.To...)
	out.SetHeader("Subject", msg.Subject)
	out.SetBody("text/html", msg.HTMLBody)
	for _, path := range msg.Attachments {
		out.Attach(path)
	}

	if err := m.dialer.DialAndSend(out); err != nil {
		return fmt.Errorf("failed to send mail to %v: %w", msg.To, err)
	}
	return nil
}
