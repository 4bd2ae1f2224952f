//go:build unit

package config_test

import (
	"testing"
	"time"

	"booking-scheduler/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Scheduling.Buffer())
	assert.Equal(t, 24*time.Hour, cfg.Scheduling.RescheduleCutoff)
	assert.False(t, cfg.Scheduling.RequireConfirmation)
	assert.Equal(t, time.UTC, cfg.Scheduling.Location())
	assert.Equal(t, "booking.events", cfg.Broker.Exchange)
}

func TestLoadConfig_PostgresRequiresCredentials(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestSchedulingConfig_Location(t *testing.T) {
	cfg := config.SchedulingConfig{TimeZone: "Europe/Berlin"}
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())

	cfg.TimeZone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.BufferMinutes = -5
	assert.Equal(t, time.Duration(0), cfg.Buffer())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*config.Config) {}},
		{name: "unknown driver", mutate: func(c *config.Config) { c.Storage.Driver = "sqlite" }, wantErr: "STORAGE_DRIVER"},
		{name: "unknown schedule zone", mutate: func(c *config.Config) { c.Scheduling.TimeZone = "Mars/Olympus" }, wantErr: "SCHEDULE_TIMEZONE"},
		{name: "deposit above 100", mutate: func(c *config.Config) { c.Scheduling.DepositPercent = 150 }, wantErr: "DEPOSIT_PERCENT"},
		{name: "zero rate", mutate: func(c *config.Config) { c.RateLimit.RPS = 0 }, wantErr: "RATE_LIMIT_RPS"},
		{name: "no workers", mutate: func(c *config.Config) { c.Broker.Workers = 0 }, wantErr: "NOTIFY_WORKERS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
