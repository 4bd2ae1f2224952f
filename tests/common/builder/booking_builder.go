//go:build unit || e2e

package builder

import (
	"time"

	"booking-scheduler/internal/domain/booking"
	reqdto "booking-scheduler/internal/handler/dto/request"
	"booking-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ClientID         uuid.UUID
	ServiceID        uuid.UUID
	LocationID       uuid.UUID
	PractitionerID   *uuid.UUID
	RoomID           *uuid.UUID
	Start            time.Time
	End              time.Time
	Notes            string
	PaymentReference *string
	Price            decimal.Decimal
	Status           booking.Status
	Now              time.Time
}

// BaseTime is a Monday, 10:00 UTC, far enough ahead for reschedule rules.
var BaseTime = time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)

func NewBookingBuilder() *BookingBuilder {
	practitionerID := uuid.New()
	roomID := uuid.New()
	return &BookingBuilder{
		ClientID:       uuid.New(),
		ServiceID:      uuid.New(),
		LocationID:     uuid.New(),
		PractitionerID: &practitionerID,
		RoomID:         &roomID,
		Start:          BaseTime,
		End:            BaseTime.Add(time.Hour),
		Notes:          "first visit",
		Price:          decimal.NewFromInt(80),
		Status:         booking.StatusConfirmed,
		Now:            BaseTime.Add(-72 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithoutPractitioner() *BookingBuilder {
	b.PractitionerID = nil
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	pricing, err := booking.NewDepositPriceCalculator(0).Calculate(b.Price)
	if err != nil {
		return nil, err
	}
	initial := b.Status
	if initial != booking.StatusPending {
		initial = booking.StatusConfirmed
	}
	bk, err := booking.NewBooking(booking.Draft{
		ClientID:         b.ClientID,
		ServiceID:        b.ServiceID,
		LocationID:       b.LocationID,
		PractitionerID:   b.PractitionerID,
		RoomID:           b.RoomID,
		Slot:             slot,
		Notes:            booking.NewNote(b.Notes),
		PaymentReference: b.PaymentReference,
	}, pricing, initial, b.Now)
	if err != nil {
		return nil, err
	}

	// walk the state machine to the requested status
	switch b.Status {
	case booking.StatusCompleted:
		err = bk.Complete(b.Now)
	case booking.StatusNoShow:
		err = bk.MarkNoShow(b.Now)
	case booking.StatusCancelled:
		err = bk.Cancel("client request", b.Now)
	}
	return bk, err
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ClientID:         b.ClientID,
		ServiceID:        b.ServiceID,
		LocationID:       b.LocationID,
		PractitionerID:   b.PractitionerID,
		RoomID:           b.RoomID,
		StartTime:        b.Start,
		EndTime:          b.End,
		Notes:            b.Notes,
		PaymentReference: b.PaymentReference,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	price := b.Price.StringFixed(2)
	zero := "0.00"
	var notes *string
	if b.Notes != "" {
		n := b.Notes
		notes = &n
	}
	return &queries.BookingView{
		ID:               uuid.New(),
		ClientID:         b.ClientID,
		ClientName:       "Jane Client",
		ServiceID:        b.ServiceID,
		ServiceName:      "Massage 60",
		LocationID:       b.LocationID,
		PractitionerID:   b.PractitionerID,
		RoomID:           b.RoomID,
		StartTime:        b.Start,
		EndTime:          b.End,
		Status:           b.Status.String(),
		ServicePrice:     price,
		Deposit:          zero,
		Discount:         zero,
		CreditsApplied:   zero,
		Total:            price,
		Notes:            notes,
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:             uuid.New(),
		ClientID:       b.ClientID,
		ServiceID:      b.ServiceID,
		ServiceName:    "Massage 60",
		PractitionerID: b.PractitionerID,
		RoomID:         b.RoomID,
		StartTime:      b.Start,
		EndTime:        b.End,
		Status:         b.Status.String(),
		Total:          b.Price.StringFixed(2),
	}
}
