package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"booking-scheduler/internal/infra/db"
	"booking-scheduler/internal/infra/repository"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const idempotencySweepInterval = time.Hour

// openPostgres connects the pool, applies migrations when enabled and closes
// the pool on shutdown.
func openPostgres(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Storage.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := db.Migrate(ctx, cfg.DB, cfg.Storage.MigrationsDir, logger); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// sweepIdempotencyKeys deletes expired idempotency keys once an hour until
// the app stops. Expired keys are already reclaimable, so this only bounds
// table growth.
func sweepIdempotencyKeys(lc fx.Lifecycle, pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) {
	repo := repository.NewIdempotencyRepository(q, pool)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencySweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case now := <-ticker.C:
						count, err := repo.DeleteExpired(ctx, now)
						if err != nil {
							logger.Warn("idempotency sweep failed", "error", err)
							continue
						}
						if count > 0 {
							logger.Info("expired idempotency keys removed", "count", count)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
