package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

import (
	"context"
	"time"

	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxRangeDays bounds ListByDateRange.
const MaxRangeDays = 93

type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	ClientID           uuid.UUID  `json:"client_id"`
	ClientName         string     `json:"client_name"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceName        string     `json:"service_name"`
	LocationID         uuid.UUID  `json:"location_id"`
	PractitionerID     *uuid.UUID `json:"practitioner_id,omitempty"`
	PractitionerName   *string    `json:"practitioner_name,omitempty"`
	RoomID             *uuid.UUID `json:"room_id,omitempty"`
	RoomName           *string    `json:"room_name,omitempty"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	Status             string     `json:"status"`
	ServicePrice       string     `json:"service_price"`
	Deposit            string     `json:"deposit"`
	Discount           string     `json:"discount"`
	CreditsApplied     string     `json:"credits_applied"`
	Total              string     `json:"total"`
	Notes              *string    `json:"notes,omitempty"`
	PaymentReference   *string    `json:"payment_reference,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID             uuid.UUID  `json:"id"`
	ClientID       uuid.UUID  `json:"client_id"`
	ServiceID      uuid.UUID  `json:"service_id"`
	ServiceName    string     `json:"service_name"`
	PractitionerID *uuid.UUID `json:"practitioner_id,omitempty"`
	RoomID         *uuid.UUID `json:"room_id,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	Status         string     `json:"status"`
	Total          string     `json:"total"`
}

// BookingReadStore excludes soft-deleted bookings everywhere. Range lookups
// match bookings starting in [from, to), ordered by start then id.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*BookingListItem, error)
	FindByResourceStartingBetween(ctx context.Context, kind resource.Kind, resourceID uuid.UUID, from, to time.Time) ([]*BookingListItem, error)
	FindByClientFirstPage(ctx context.Context, clientID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByClientKeyset(ctx context.Context, clientID uuid.UUID, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

// BookingQueries takes calendar dates as "2006-01-02" in the schedule timezone.
type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByDate(ctx context.Context, date string) ([]*BookingListItem, error)
	ListByDateRange(ctx context.Context, from, to string) ([]*BookingListItem, error)
	ListByPractitionerDate(ctx context.Context, practitionerID uuid.UUID, date string) ([]*BookingListItem, error)
	ListByRoomDate(ctx context.Context, roomID uuid.UUID, date string) ([]*BookingListItem, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	loc   *time.Location
}

func NewBookingQueries(store BookingReadStore, loc *time.Location) BookingQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &bookingQueriesImpl{store: store, loc: loc}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByDate(ctx context.Context, date string) ([]*BookingListItem, error) {
	from, to, err := q.dayRange(date, date)
	if err != nil {
		return nil, err
	}
	return q.wrap(q.store.FindStartingBetween(ctx, from, to))
}

func (q *bookingQueriesImpl) ListByDateRange(ctx context.Context, fromDate, toDate string) ([]*BookingListItem, error) {
	from, to, err := q.dayRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return q.wrap(q.store.FindStartingBetween(ctx, from, to))
}

func (q *bookingQueriesImpl) ListByPractitionerDate(ctx context.Context, practitionerID uuid.UUID, date string) ([]*BookingListItem, error) {
	from, to, err := q.dayRange(date, date)
	if err != nil {
		return nil, err
	}
	return q.wrap(q.store.FindByResourceStartingBetween(ctx, resource.KindPractitioner, practitionerID, from, to))
}

func (q *bookingQueriesImpl) ListByRoomDate(ctx context.Context, roomID uuid.UUID, date string) ([]*BookingListItem, error) {
	from, to, err := q.dayRange(date, date)
	if err != nil {
		return nil, err
	}
	return q.wrap(q.store.FindByResourceStartingBetween(ctx, resource.KindRoom, roomID, from, to))
}

func (q *bookingQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	// fetch one extra row to learn whether another page exists
	fetch := int32(limit + 1) // #nosec G115 -- limit is bounded by MaxListLimit

	var (
		rows []*BookingListItem
		err  error
	)
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByClientFirstPage(ctx, clientID, fetch)
	} else {
		afterStart, afterID, decodeErr := DecodeAfterCursor(cursor.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, errs.ErrValidation)
		}
		rows, err = q.store.FindByClientKeyset(ctx, clientID, afterStart, afterID, fetch)
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.StartTime, last.ID)}, nil
}

// dayRange converts inclusive local dates into [from, to) instants.
func (q *bookingQueriesImpl) dayRange(fromDate, toDate string) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(schedule.DateLayout, fromDate, q.loc)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrapf(errs.ErrValidation, "invalid date %q", fromDate)
	}
	to, err := time.ParseInLocation(schedule.DateLayout, toDate, q.loc)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrapf(errs.ErrValidation, "invalid date %q", toDate)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errs.Wrap(errs.ErrValidation, "range end precedes start")
	}
	end := to.AddDate(0, 0, 1)
	if end.Sub(from) > MaxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, errs.Wrapf(errs.ErrValidation, "range exceeds %d days", MaxRangeDays)
	}
	return from.UTC(), end.UTC(), nil
}

func (q *bookingQueriesImpl) wrap(rows []*BookingListItem, err error) ([]*BookingListItem, error) {
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return rows, nil
}
