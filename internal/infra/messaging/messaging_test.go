//go:build unit

package messaging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/metrics"
	"booking-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeChannel struct {
	mu        sync.Mutex
	err       error
	published []amqp.Publishing
	keys      []string
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	return nil
}

type recordingSink struct {
	name string
	err  error

	mu     sync.Mutex
	events []shared.BookingEvent
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Send(_ context.Context, e shared.BookingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func event(t shared.EventType) shared.BookingEvent {
	return shared.BookingEvent{ID: uuid.New(), Type: t, BookingID: uuid.New(), Status: "confirmed", OccurredAt: time.Now()}
}

func TestAMQPSink_RoutesByEventType(t *testing.T) {
	ch := &fakeChannel{}
	sink := newAMQPSink(ch, config.BrokerConfig{Exchange: "booking.events", BreakerMaxFail: 3, BreakerTimeout: time.Minute}, quiet)

	require.NoError(t, sink.Send(context.Background(), event(shared.EventBookingCancelled)))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "booking.cancelled", ch.keys[0])
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Contains(t, string(ch.published[0].Body), `"type":"booking.cancelled"`)
}

func TestAMQPSink_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	sink := newAMQPSink(ch, config.BrokerConfig{Exchange: "booking.events", BreakerMaxFail: 2, BreakerTimeout: time.Minute}, quiet)
	ctx := context.Background()

	assert.EqualError(t, sink.Send(ctx, event(shared.EventBookingCreated)), "channel closed")
	assert.EqualError(t, sink.Send(ctx, event(shared.EventBookingCreated)), "channel closed")

	ch.err = nil
	assert.ErrorIs(t, sink.Send(ctx, event(shared.EventBookingCreated)), ErrBrokerUnavailable)
	assert.Empty(t, ch.published)
}

func TestDispatcher_DeliversInBackground(t *testing.T) {
	primary := &recordingSink{name: "primary"}
	collector := metrics.NewCollectorWith(prometheus.NewRegistry())
	d := NewDispatcher(primary, nil, config.BrokerConfig{QueueSize: 8, Workers: 2}, collector, quiet)
	d.Start()

	for i := 0; i < 5; i++ {
		d.Publish(context.Background(), event(shared.EventBookingCreated))
	}
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 5, primary.count())
	assert.Equal(t, 5.0, testutil.ToFloat64(collector.NotificationsTotal.WithLabelValues("primary", "ok")))
}

func TestDispatcher_FallsBackWhenPrimaryFails(t *testing.T) {
	primary := &recordingSink{name: "amqp", err: ErrBrokerUnavailable}
	fallback := &recordingSink{name: "log"}
	d := NewDispatcher(primary, fallback, config.BrokerConfig{QueueSize: 4, Workers: 1}, nil, quiet)
	d.Start()

	d.Publish(context.Background(), event(shared.EventBookingNoShow))
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 1, primary.count())
	assert.Equal(t, 1, fallback.count())
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	primary := &recordingSink{name: "primary"}
	collector := metrics.NewCollectorWith(prometheus.NewRegistry())
	d := NewDispatcher(primary, nil, config.BrokerConfig{QueueSize: 1, Workers: 1}, collector, quiet)

	// not started: the second event finds the queue full
	d.Publish(context.Background(), event(shared.EventBookingCreated))
	d.Publish(context.Background(), event(shared.EventBookingCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.NotificationsDropped))

	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 1, primary.count())
}

func TestDispatcher_PublishAfterStopIsDropped(t *testing.T) {
	primary := &recordingSink{name: "primary"}
	d := NewDispatcher(primary, nil, config.BrokerConfig{}, nil, quiet)
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.NotPanics(t, func() { d.Publish(context.Background(), event(shared.EventBookingCreated)) })
	assert.Zero(t, primary.count())
}

type panickingSink struct{}

func (panickingSink) Name() string { return "panicky" }
func (panickingSink) Send(context.Context, shared.BookingEvent) error {
	panic("boom")
}

func TestDispatcher_SurvivesPanickingSink(t *testing.T) {
	fallback := &recordingSink{name: "log"}
	d := NewDispatcher(panickingSink{}, fallback, config.BrokerConfig{Workers: 1}, nil, quiet)
	d.Start()

	d.Publish(context.Background(), event(shared.EventBookingCreated))
	d.Publish(context.Background(), event(shared.EventBookingCreated))
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 2, fallback.count())
}
