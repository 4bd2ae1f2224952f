//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"booking-scheduler/cmd/bootstrap"
	"booking-scheduler/cmd/bootstrap/components"
	"booking-scheduler/internal/infra/db"
	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/metrics"
	"booking-scheduler/tests/common/authtest"
	"booking-scheduler/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

// SharedSuite runs the fully wired application against a private database in
// a shared PostgreSQL container. Tables are truncated before every test and subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Tokens *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbCfg := createDatabase(t, postgresAddress(t))

	pool, cleanup, err := db.Connect(dbCfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)
	require.NoError(t, applyMigrations(pool), "migration failed")

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Storage.Driver = "postgres"

	s.DB = pool
	s.Config = cfg
	s.Tokens = authtest.NewJWTHelper(cfg.JWT)
	s.Router = startApp(t, cfg)
}

func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}

// startApp wires the production modules, swapping only the metrics registry:
// the default registry panics when a second app registers the same collectors.
func startApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			func() *metrics.Collector { return metrics.NewCollectorWith(prometheus.NewRegistry()) },
		),
		bootstrap.LoggerModule,
		bootstrap.StorageModule,
		bootstrap.BrokerModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app failed to start")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err)
		}
	})
	return router
}

type address struct {
	host string
	port nat.Port
}

func postgresAddress(t *testing.T) address {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, containerErr, "failed to start postgres container")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port(pgPort))
	require.NoError(t, err)
	return address{host: host, port: port}
}

// postgresRequest trades durability for speed; ryuk removes the container.
func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{pgPort},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL(nat.Port(pgPort), "pgx", func(host string, port nat.Port) string {
			return adminDSN(address{host: host, port: port})
		}).WithStartupTimeout(60 * time.Second),
		Name:   "booking-postgres-e2e",
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func adminDSN(a address) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, a.host, a.port.Port())
}

// createDatabase creates a database private to this suite and drops it on cleanup.
func createDatabase(t *testing.T, a address) config.DBConfig {
	t.Helper()

	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	exec := func(sql string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(a))
		if err != nil {
			return err
		}
		defer admin.Close()
		_, err = admin.Exec(ctx, sql)
		return err
	}

	var err error
	for attempt := range 5 {
		// concurrent CREATE DATABASE calls contend on the template database
		if err = exec("CREATE DATABASE " + name); err == nil {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 300 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		if err := exec("DROP DATABASE IF EXISTS " + name + " WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     a.host,
		Port:     a.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// applyMigrations runs migrations/*.sql in name order. The atlas CLI used by
// DB_AUTO_MIGRATE is not assumed to be installed where tests run.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, file := range files {
		sql, err := os.ReadFile(file) // #nosec G304 -- repository file
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package directory `go test` runs in.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found")
		}
		dir = parent
	}
}
