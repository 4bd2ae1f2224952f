package bootstrap

import (
	"log/slog"

	"booking-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the settings that change scheduling outcomes; secrets stay out.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"storage_driver", cfg.Storage.Driver,
		"schedule_timezone", cfg.Scheduling.TimeZone,
		"buffer", cfg.Scheduling.Buffer(),
		"require_confirmation", cfg.Scheduling.RequireConfirmation,
		"reschedule_cutoff", cfg.Scheduling.RescheduleCutoff,
		"broker_enabled", cfg.Broker.URL != "",
		"tracing_enabled", cfg.Tracing.Enabled,
	)
}
