package readstore

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/readstore/catalog_mock.go -package=readstoremock

import (
	"context"
	"log/slog"

	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/domain/service"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/repository/converter"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ClientExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	GetService(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Service, error)
	GetResource(ctx context.Context, db sqlc.DBTX, arg sqlc.GetResourceParams) (sqlc.Resource, error)
	ListEligibleResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEligibleResourcesParams) ([]sqlc.Resource, error)
	ListWeeklyHours(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.ResourceWeeklyHour, error)
	ListDateOverrides(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.ResourceDateOverride, error)
}

// CatalogReadStore serves clients, services, resources and their schedules.
type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

func (r *CatalogReadStore) ClientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.ClientExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check client", err)
	}
	return ok, nil
}

func (r *CatalogReadStore) ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row, err := r.queries.GetService(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "service not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find service by ID", err)
	}
	svc, err := converter.ServiceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode service", err)
	}
	return svc, nil
}

// ResourceByID treats a resource of another kind as absent.
func (r *CatalogReadStore) ResourceByID(ctx context.Context, kind resource.Kind, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResource(ctx, r.db, sqlc.GetResourceParams{ID: id, Kind: kind.String()})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, kind.String()+" not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find resource by ID", err)
	}
	return converter.ResourceFromRow(row), nil
}

func (r *CatalogReadStore) EligibleResources(ctx context.Context, kind resource.Kind, serviceID uuid.UUID) ([]*resource.Resource, error) {
	rows, err := r.queries.ListEligibleResources(ctx, r.db, sqlc.ListEligibleResourcesParams{
		ServiceID: serviceID,
		Kind:      kind.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list eligible resources", err)
	}
	result := make([]*resource.Resource, len(rows))
	for i, row := range rows {
		result[i] = converter.ResourceFromRow(row)
	}
	return result, nil
}

// ScheduleFor reports KindNotFound when the resource has no hours configured.
func (r *CatalogReadStore) ScheduleFor(ctx context.Context, resourceID uuid.UUID) (*schedule.Schedule, error) {
	weekly, err := r.queries.ListWeeklyHours(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list weekly hours", err)
	}
	overrides, err := r.queries.ListDateOverrides(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list date overrides", err)
	}
	if len(weekly) == 0 && len(overrides) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "schedule not found", nil)
	}
	sched, err := converter.ScheduleFromRows(resourceID, weekly, overrides)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode schedule", err)
	}
	return sched, nil
}
