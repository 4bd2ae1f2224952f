package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_mock.go -package=repositorymock

import (
	"context"
	"log/slog"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/repository/converter"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

// Create surfaces an overlap caught by the exclusion constraints as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	affected, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to update booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}
