package shared

import "context"

// EventPublisher hands lifecycle events to notification and audit collaborators.
// Publish must not block on delivery and its failures never undo a transition.
type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BookingEvent) {}
