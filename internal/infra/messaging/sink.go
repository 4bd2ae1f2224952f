package messaging

import (
	"context"
	"errors"
	"log/slog"

	"booking-scheduler/internal/usecase/shared"
)

// Sink delivers one lifecycle event to a downstream collaborator.
type Sink interface {
	Name() string
	Send(ctx context.Context, event shared.BookingEvent) error
}

// LogSink records events in the application log. It backs the dispatcher when
// no broker is configured and takes over when the broker is unavailable.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(ctx context.Context, event shared.BookingEvent) error {
	attrs := []any{
		"event_id", event.ID.String(),
		"booking_id", event.BookingID.String(),
		"client_id", event.ClientID.String(),
		"status", event.Status,
		"start_time", event.StartTime,
		"end_time", event.EndTime,
	}
	if event.Reason != "" {
		attrs = append(attrs, "reason", event.Reason)
	}
	s.logger.InfoContext(ctx, string(event.Type), attrs...)
	return nil
}

var errSinkPanicked = errors.New("event sink panicked")
