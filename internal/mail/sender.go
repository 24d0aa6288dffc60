// Package mail holds the outbound email-delivery provider clients. Providers
// are interchangeable behind the Sender interface; the notifier treats a nil
// Sender as "delivery not configured".
package mail

import "context"

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers one message per call. Implementations report provider
// errors verbatim; the caller decides whether a failure is fatal.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
