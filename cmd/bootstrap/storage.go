package bootstrap

import (
	"log/slog"

	"booking-scheduler/internal/infra/memstore"
	"booking-scheduler/internal/infra/readstore"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/infra/uow"
	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/usecase/availability"
	"booking-scheduler/internal/usecase/queries"
	"booking-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	driverPostgres = "postgres"
	driverMemory   = "memory"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStorage,
	),
)

// Storage is the persistence surface the use cases depend on. Both drivers
// fill every field.
type Storage struct {
	fx.Out

	UoW      shared.UnitOfWork
	Bookings queries.BookingReadStore
	Reads    availability.Reads
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Storage, error) {
	switch cfg.Storage.Driver {
	case driverPostgres:
		return newPostgresStorage(lc, cfg, logger)
	case driverMemory:
		return newMemoryStorage(cfg, logger)
	default:
		return Storage{}, errs.Newf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}

func newPostgresStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Storage, error) {
	pool, err := openPostgres(lc, cfg, logger)
	if err != nil {
		return Storage{}, err
	}

	q := sqlc.New()
	unit := uow.NewPostgresUoW(pool, q, logger)
	sweepIdempotencyKeys(lc, pool, q, logger)

	logger.Info("storage ready", "driver", driverPostgres, "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return Storage{
		UoW:      unit,
		Bookings: readstore.NewBookingReadStore(q, pool),
		Reads:    unit.CommandReads(),
	}, nil
}

func newMemoryStorage(cfg config.Config, logger *slog.Logger) (Storage, error) {
	store := memstore.New()
	if cfg.Storage.SeedFile != "" {
		seed, err := memstore.LoadSeedFile(cfg.Storage.SeedFile)
		if err != nil {
			return Storage{}, err
		}
		if err := store.Apply(seed); err != nil {
			return Storage{}, err
		}
	}

	unit := memstore.NewUoW(store)
	logger.Info("storage ready", "driver", driverMemory, "seed", cfg.Storage.SeedFile)
	return Storage{
		UoW:      unit,
		Bookings: memstore.NewReadStore(store),
		Reads:    unit.CommandReads(),
	}, nil
}
