// Package notify is the worker-side sink for booking lifecycle events.
// Actual delivery channels (email, SMS) live outside this service; the sink
// records what would be sent.
package notify

import (
	"context"
	"log"

	"github.com/eventgrid/eventgrid/internal/kafka"
)

type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Handle(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("notify: booking %s %s (event %s, status %s)", event.BookingID, event.Type, event.EventID, event.Status)
	return nil
}
