// Package contact accepts messages from the portfolio contact form.
//
// Nothing is delivered anywhere: Stub waits a fixed delay, the way a request to
// a mail service would take a moment, and always acknowledges.
package contact

import (
	"context"
	"log"
	"time"
)

// Message is a filled-in contact form.
type Message struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

// Ack is the acknowledgment shown to the visitor.
type Ack struct {
	Title       string
	Description string
}

// Sent is the acknowledgment for every accepted message.
var Sent = Ack{
	Title:       "Message sent!",
	Description: "Thank you for reaching out. I'll get back to you soon.",
}

// Submitter accepts contact messages.
type Submitter interface {
	Submit(ctx context.Context, msg Message) (Ack, error)
}

// Stub is a Submitter that simulates an outbound request.
type Stub struct {
	Delay time.Duration
}

// Submit waits Delay and acknowledges. It only fails when ctx ends first.
func (s Stub) Submit(ctx context.Context, msg Message) (Ack, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Ack{}, ctx.Err()
		case <-timer.C:
		}
	}
	log.Printf("Contact message received from %s", msg.Name)
	return Sent, nil
}
