package mailer

import "log"

// Mailer dispatches a plain-text message. A hard failure from Send aborts
// the write that triggered it, so implementations must not swallow errors.
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer is the dev fallback when no SMTP relay is configured: it writes
// the message to the process log and always succeeds.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("mail to %s | %s\n%s", to, subject, body)
	return nil
}
