package components

import (
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/calendar"
	"booking-scheduler/internal/pkg/clock"
	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/usecase/availability"
	"booking-scheduler/internal/usecase/commands"
	"booking-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *time.Location {
		return cfg.Scheduling.Location()
	},
	func(cfg config.Config) *calendar.ConflictDetector {
		return calendar.NewConflictDetector(calendar.NewBufferPolicy(cfg.Scheduling.Buffer()))
	},
	availability.NewFactory,
	fx.Annotate(
		func(cfg config.Config) *booking.DepositPriceCalculator {
			return booking.NewDepositPriceCalculator(cfg.Scheduling.DepositPercent)
		},
		fx.As(new(booking.PriceCalculator)),
	),
	func(cfg config.Config) commands.SchedulerOptions {
		return commands.SchedulerOptions{
			RequireConfirmation: cfg.Scheduling.RequireConfirmation,
			RescheduleCutoff:    cfg.Scheduling.RescheduleCutoff,
			IdempotencyTTL:      cfg.Scheduling.IdempotencyTTL,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
	),
)
