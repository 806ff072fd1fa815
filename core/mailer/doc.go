// Package mailer provides SMTP delivery for notification email.
//
// It wraps gomail to send HTML messages with file attachments through a
// single configured account. The From header combines the configured sender
// name and address, so recipients see the association name rather than the
// raw mailbox.
//
// # Mailer Interface
//
// The Mailer interface abstracts the transport, making it easier to mock
// delivery in unit tests (as seen in core/mailer/mocks).
//
// # Usage
//
//	m, err := mailer.NewMailer(config)
//	err = m.Send(ctx, mailer.Message{
//	    To:       []string{"parent@example.com"},
//	    Subject:  "Registration received",
//	    HTMLBody: body,
//	})
package mailer
