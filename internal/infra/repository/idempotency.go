package repository

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/repository/idempotency_mock.go -package=repositorymock

import (
	"context"
	"log/slog"
	"time"

	"booking-scheduler/internal/infra"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	InsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

// TryInsert blocks on a concurrent insert of the same key until that
// transaction ends, then reports whether this call won the key.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	affected, err := r.queries.InsertIdempotencyKey(ctx, r.db, sqlc.InsertIdempotencyKeyParams{
		Key:         key,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to insert idempotency key", err)
	}
	return affected == 1, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key uuid.UUID, bookingID uuid.UUID) error {
	affected, err := r.queries.CompleteIdempotencyKey(ctx, r.db, sqlc.CompleteIdempotencyKeyParams{
		Key:             key,
		ResultBookingID: pgconv.UUIDToPgtype(bookingID),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to complete idempotency key", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "idempotency key not found", nil)
	}
	return nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, key uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error) {
	affected, err := r.queries.ClaimExpiredIdempotencyKey(ctx, r.db, sqlc.ClaimExpiredIdempotencyKeyParams{
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Key:         key,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to claim expired idempotency key", err)
	}
	return affected == 1, nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete expired idempotency keys", err)
	}
	return count, nil
}
