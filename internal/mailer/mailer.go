// Package mailer defines the transactional email boundary.  Delivery
// itself is an external concern; the service only needs "send this
// subject/body to this recipient".  The default implementation writes
// the message to the application log, which is also what runs in dev
// and test environments.
package mailer

import (
	"context"
	"log"
)

// Sender delivers one transactional email.  Implementations must not
// block the request path for long; callers treat failures as non-fatal
// and log them.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender is the development/test implementation: it records the
// message in the application log and reports success.
type LogSender struct {
	FromName string
	FromAddr string
}

// NewLogSender returns a LogSender stamped with the configured sender
// identity.
func NewLogSender(fromName, fromAddr string) *LogSender {
	return &LogSender{FromName: fromName, FromAddr: fromAddr}
}

// Send logs the outgoing message.  It never fails.
func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	log.Printf("mailer: from=%q <%s> to=%s subject=%q body=%q", s.FromName, s.FromAddr, to, subject, body)
	return nil
}
