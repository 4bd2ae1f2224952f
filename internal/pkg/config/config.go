package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Storage    StorageConfig
	Scheduling SchedulingConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Broker     BrokerConfig
	Tracing    TracingConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type StorageConfig struct {
	// postgres | memory
	Driver        string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	SeedFile      string `envconfig:"STORAGE_SEED_FILE"`
	AutoMigrate   bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
}

type SchedulingConfig struct {
	BufferMinutes       int           `envconfig:"BOOKING_BUFFER_MINUTES" default:"15"`
	TimeZone            string        `envconfig:"SCHEDULE_TIMEZONE" default:"UTC"`
	RequireConfirmation bool          `envconfig:"BOOKING_REQUIRE_CONFIRMATION" default:"false"`
	RescheduleCutoff    time.Duration `envconfig:"RESCHEDULE_CUTOFF" default:"24h"`
	DepositPercent      float64       `envconfig:"DEPOSIT_PERCENT" default:"0"`
	IdempotencyTTL      time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID,Idempotent-Replayed,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BrokerConfig struct {
	// empty URL keeps events in the log sink only
	URL            string        `envconfig:"AMQP_URL"`
	Exchange       string        `envconfig:"AMQP_EXCHANGE" default:"booking.events"`
	QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	Workers        int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	PublishTimeout time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
	BreakerMaxFail uint32        `envconfig:"NOTIFY_BREAKER_MAX_FAILURES" default:"5"`
	BreakerTimeout time.Duration `envconfig:"NOTIFY_BREAKER_TIMEOUT" default:"30s"`
}

type TracingConfig struct {
	Enabled     bool    `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint    string  `envconfig:"OTLP_ENDPOINT" default:"localhost:4318"`
	SampleRate  float64 `envconfig:"TRACING_SAMPLE_RATE" default:"1.0"`
	ServiceName string  `envconfig:"SERVICE_NAME" default:"booking-scheduler"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c SchedulingConfig) Buffer() time.Duration {
	if c.BufferMinutes < 0 {
		return 0
	}
	return time.Duration(c.BufferMinutes) * time.Minute
}

// Location falls back to UTC for an unknown zone name.
func (c SchedulingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations envconfig tags cannot express.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres":
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the postgres storage driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if _, err := time.LoadLocation(c.Scheduling.TimeZone); err != nil {
		return fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", c.Scheduling.TimeZone, err)
	}
	if c.Scheduling.DepositPercent < 0 || c.Scheduling.DepositPercent > 100 {
		return fmt.Errorf("DEPOSIT_PERCENT must be within 0..100, got %v", c.Scheduling.DepositPercent)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST at least 1")
	}
	if c.Broker.Workers < 1 || c.Broker.QueueSize < 1 {
		return fmt.Errorf("NOTIFY_WORKERS and NOTIFY_QUEUE_SIZE must be at least 1")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Storage: StorageConfig{
			Driver:        "memory",
			MigrationsDir: "migrations",
		},
		Scheduling: SchedulingConfig{
			BufferMinutes:    15,
			TimeZone:         "UTC",
			RescheduleCutoff: 24 * time.Hour,
			IdempotencyTTL:   24 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Broker: BrokerConfig{
			Exchange:       "booking.events",
			QueueSize:      16,
			Workers:        1,
			PublishTimeout: time.Second,
			BreakerMaxFail: 3,
			BreakerTimeout: time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
		},
	}
}
