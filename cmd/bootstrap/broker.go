package bootstrap

import (
	"context"
	"log/slog"

	"booking-scheduler/internal/infra/messaging"
	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/metrics"
	"booking-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher delivers booking events to AMQP when AMQP_URL is set, falling
// back to the log sink. Without a broker, or when the broker is unreachable at
// startup, events are only logged.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, collector *metrics.Collector, logger *slog.Logger) shared.EventPublisher {
	logSink := messaging.NewLogSink(logger)

	var primary messaging.Sink = logSink
	var fallback messaging.Sink
	var amqpSink *messaging.AMQPSink

	if cfg.Broker.URL != "" {
		sink, err := messaging.DialAMQP(cfg.Broker, logger)
		if err != nil {
			logger.Warn("broker unreachable, booking events will only be logged", "error", err)
		} else {
			amqpSink = sink
			primary, fallback = sink, logSink
		}
	}

	dispatcher := messaging.NewDispatcher(primary, fallback, cfg.Broker, collector, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := dispatcher.Stop(ctx)
			if amqpSink != nil {
				if cerr := amqpSink.Close(); cerr != nil {
					logger.Warn("failed to close broker connection", "error", cerr)
				}
			}
			return err
		},
	})

	return dispatcher
}
