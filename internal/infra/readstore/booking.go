package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking_mock.go -package=readstoremock

import (
	"context"
	"log/slog"
	"time"

	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/repository/converter"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/pgconv"
	"booking-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingDetail, error)
	ListBookingsStartingBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsStartingBetweenParams) ([]sqlc.BookingListItem, error)
	ListPractitionerBookingsStartingBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPractitionerBookingsStartingBetweenParams) ([]sqlc.BookingListItem, error)
	ListRoomBookingsStartingBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsStartingBetweenParams) ([]sqlc.BookingListItem, error)
	ListClientBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientBookingsFirstPageParams) ([]sqlc.BookingListItem, error)
	ListClientBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientBookingsKeysetParams) ([]sqlc.BookingListItem, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find booking by ID", err)
	}
	view, err := converter.BookingViewFromDetail(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsStartingBetween(ctx, r.db, sqlc.ListBookingsStartingBetweenParams{
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
	})
	return r.items(rows, err, "failed to list bookings by range")
}

func (r *BookingReadStore) FindByResourceStartingBetween(ctx context.Context, kind resource.Kind, resourceID uuid.UUID, from, to time.Time) ([]*queries.BookingListItem, error) {
	var (
		rows []sqlc.BookingListItem
		err  error
	)
	switch kind {
	case resource.KindPractitioner:
		rows, err = r.queries.ListPractitionerBookingsStartingBetween(ctx, r.db, sqlc.ListPractitionerBookingsStartingBetweenParams{
			ResourceID: pgconv.UUIDToPgtype(resourceID),
			FromTime:   pgconv.TimeToPgtype(from),
			ToTime:     pgconv.TimeToPgtype(to),
		})
	case resource.KindRoom:
		rows, err = r.queries.ListRoomBookingsStartingBetween(ctx, r.db, sqlc.ListRoomBookingsStartingBetweenParams{
			ResourceID: pgconv.UUIDToPgtype(resourceID),
			FromTime:   pgconv.TimeToPgtype(from),
			ToTime:     pgconv.TimeToPgtype(to),
		})
	default:
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "unknown resource kind "+kind.String(), nil)
	}
	return r.items(rows, err, "failed to list bookings by "+kind.String())
}

func (r *BookingReadStore) FindByClientFirstPage(ctx context.Context, clientID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListClientBookingsFirstPage(ctx, r.db, sqlc.ListClientBookingsFirstPageParams{
		ClientID: clientID,
		RowLimit: limit,
	})
	return r.items(rows, err, "failed to list client bookings first page")
}

func (r *BookingReadStore) FindByClientKeyset(ctx context.Context, clientID uuid.UUID, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListClientBookingsKeyset(ctx, r.db, sqlc.ListClientBookingsKeysetParams{
		ClientID:   clientID,
		AfterStart: pgconv.TimeToPgtype(afterStart),
		AfterID:    afterID,
		RowLimit:   limit,
	})
	return r.items(rows, err, "failed to list client bookings with keyset")
}

func (r *BookingReadStore) items(rows []sqlc.BookingListItem, err error, msg string) ([]*queries.BookingListItem, error) {
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	items, err := converter.BookingListItemsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking list", err)
	}
	return items, nil
}
