package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/metrics"
	"booking-scheduler/internal/usecase/shared"
)

// Dispatcher hands events to sinks on background workers so a slow or failing
// collaborator never delays or undoes a committed transition. When the queue
// is full the event is dropped and counted.
type Dispatcher struct {
	primary  Sink
	fallback Sink
	queue    chan shared.BookingEvent
	workers  int
	timeout  time.Duration
	metrics  *metrics.Collector
	logger   *slog.Logger

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	started bool
}

// NewDispatcher sends to primary and falls back to fallback when primary
// fails. fallback may be nil.
func NewDispatcher(primary, fallback Sink, cfg config.BrokerConfig, collector *metrics.Collector, logger *slog.Logger) *Dispatcher {
	size := cfg.QueueSize
	if size <= 0 {
		size = 256
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		primary:  primary,
		fallback: fallback,
		queue:    make(chan shared.BookingEvent, size),
		workers:  workers,
		timeout:  timeout,
		metrics:  collector,
		logger:   logger,
	}
}

var _ shared.EventPublisher = (*Dispatcher)(nil)

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
}

// Stop drains queued events, waiting at most until ctx is done.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) Publish(ctx context.Context, event shared.BookingEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.drop(ctx, event, "dispatcher stopped")
		return
	}
	select {
	case d.queue <- event:
	default:
		d.drop(ctx, event, "queue full")
	}
}

func (d *Dispatcher) drop(ctx context.Context, event shared.BookingEvent, reason string) {
	if d.metrics != nil {
		d.metrics.NotificationsDropped.Inc()
	}
	d.logger.WarnContext(ctx, "booking event dropped",
		"reason", reason,
		"event", string(event.Type),
		"booking_id", event.BookingID.String())
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for event := range d.queue {
		d.deliver(event)
	}
}

func (d *Dispatcher) deliver(event shared.BookingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	err := d.send(ctx, d.primary, event)
	if err == nil || d.fallback == nil {
		return
	}
	d.logger.Warn("event delivery failed, using fallback",
		"sink", d.primary.Name(),
		"event", string(event.Type),
		"booking_id", event.BookingID.String(),
		"error", err.Error())
	_ = d.send(ctx, d.fallback, event)
}

func (d *Dispatcher) send(ctx context.Context, sink Sink, event shared.BookingEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event sink panicked", "sink", sink.Name(), "panic", r)
			err = errSinkPanicked
		}
		if d.metrics != nil {
			result := "ok"
			if err != nil {
				result = "error"
			}
			d.metrics.NotificationsTotal.WithLabelValues(sink.Name(), result).Inc()
		}
	}()
	return sink.Send(ctx, event)
}
