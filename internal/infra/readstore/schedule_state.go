package readstore

//go:generate mockgen -source=schedule_state.go -destination=../../../tests/mock/readstore/schedule_state_mock.go -package=readstoremock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/calendar"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/repository/converter"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleStateQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListPractitionerActiveBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPractitionerActiveBookingsParams) ([]sqlc.ListPractitionerActiveBookingsRow, error)
	ListRoomActiveBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomActiveBookingsParams) ([]sqlc.ListRoomActiveBookingsRow, error)
}

// ScheduleStateReadStore loads booking aggregates and resource calendars for
// the write side. Soft-deleted bookings are invisible.
type ScheduleStateReadStore struct {
	queries ScheduleStateQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewScheduleStateReadStore(queries ScheduleStateQueries, db sqlc.DBTX) *ScheduleStateReadStore {
	return &ScheduleStateReadStore{
		queries: queries,
		db:      db,
		logger:  slog.Default(),
	}
}

func (r *ScheduleStateReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	return r.aggregate(row, err)
}

// BookingForUpdate holds the row lock until the surrounding transaction ends.
func (r *ScheduleStateReadStore) BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	return r.aggregate(row, err)
}

func (r *ScheduleStateReadStore) aggregate(row sqlc.Booking, err error) (*booking.Booking, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking", err)
	}
	return b, nil
}

func (r *ScheduleStateReadStore) ActiveBookings(ctx context.Context, kind resource.Kind, resourceID uuid.UUID, from, to time.Time) ([]calendar.Entry, error) {
	id := pgconv.UUIDToPgtype(resourceID)
	start, end := pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to)

	var entries []calendar.Entry
	switch kind {
	case resource.KindPractitioner:
		rows, err := r.queries.ListPractitionerActiveBookings(ctx, r.db, sqlc.ListPractitionerActiveBookingsParams{
			ResourceID: id, WindowStart: start, WindowEnd: end,
		})
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list practitioner bookings", err)
		}
		for _, row := range rows {
			e, err := calendarEntry(row.ID, row.StartTime, row.EndTime, row.Status)
			if err != nil {
				return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode calendar", err)
			}
			entries = append(entries, e)
		}
	case resource.KindRoom:
		rows, err := r.queries.ListRoomActiveBookings(ctx, r.db, sqlc.ListRoomActiveBookingsParams{
			ResourceID: id, WindowStart: start, WindowEnd: end,
		})
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list room bookings", err)
		}
		for _, row := range rows {
			e, err := calendarEntry(row.ID, row.StartTime, row.EndTime, row.Status)
			if err != nil {
				return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode calendar", err)
			}
			entries = append(entries, e)
		}
	default:
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "unknown resource kind "+kind.String(), nil)
	}
	return entries, nil
}

func calendarEntry(id uuid.UUID, start, end pgtype.Timestamptz, status string) (calendar.Entry, error) {
	st, ok := booking.ParseStatus(status)
	if !ok {
		return calendar.Entry{}, fmt.Errorf("unknown booking status %q", status)
	}
	return calendar.Entry{
		BookingID: id,
		Start:     pgconv.TimeFromPgtype(start),
		End:       pgconv.TimeFromPgtype(end),
		Status:    st,
	}, nil
}
