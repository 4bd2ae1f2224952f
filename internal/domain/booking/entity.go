package booking

import (
	"time"

	"booking-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice  = errs.New("price cannot be negative")
	ErrAlreadyDeleted = errs.New("booking is already deleted")
)

type Draft struct {
	ClientID         uuid.UUID
	ServiceID        uuid.UUID
	LocationID       uuid.UUID
	PractitionerID   *uuid.UUID
	RoomID           *uuid.UUID
	Slot             TimeSlot
	Notes            Note
	PaymentReference *string
}

// Changes carries the fields of a partial update. Nil means unchanged.
type Changes struct {
	PractitionerID   *uuid.UUID
	RoomID           *uuid.UUID
	Slot             *TimeSlot
	Notes            *Note
	PaymentReference *string
}

type Booking struct {
	id                 uuid.UUID
	clientID           uuid.UUID
	serviceID          uuid.UUID
	locationID         uuid.UUID
	practitionerID     *uuid.UUID
	roomID             *uuid.UUID
	slot               TimeSlot
	status             Status
	pricing            Pricing
	notes              Note
	paymentReference   *string
	cancellationReason *string
	createdAt          time.Time
	updatedAt          time.Time
	deletedAt          *time.Time
}

// NewBooking creates a booking in its initial status, which must be
// Pending or Confirmed.
func NewBooking(d Draft, pricing Pricing, initial Status, now time.Time) (*Booking, error) {
	if initial != StatusPending && initial != StatusConfirmed {
		return nil, errs.ErrInvalidStateTransition
	}
	if d.Slot.Start().IsZero() || !d.Slot.End().After(d.Slot.Start()) {
		return nil, errs.ErrInvalidTimeSlot
	}
	if pricing.Total.IsNegative() {
		return nil, ErrNegativePrice
	}

	now = now.UTC()
	return &Booking{
		id:               uuid.New(),
		clientID:         d.ClientID,
		serviceID:        d.ServiceID,
		locationID:       d.LocationID,
		practitionerID:   copyID(d.PractitionerID),
		roomID:           copyID(d.RoomID),
		slot:             d.Slot,
		status:           initial,
		pricing:          pricing,
		notes:            d.Notes,
		paymentReference: copyString(d.PaymentReference),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type Snapshot struct {
	ID                 uuid.UUID
	ClientID           uuid.UUID
	ServiceID          uuid.UUID
	LocationID         uuid.UUID
	PractitionerID     *uuid.UUID
	RoomID             *uuid.UUID
	Slot               TimeSlot
	Status             Status
	Pricing            Pricing
	Notes              Note
	PaymentReference   *string
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:                 s.ID,
		clientID:           s.ClientID,
		serviceID:          s.ServiceID,
		locationID:         s.LocationID,
		practitionerID:     copyID(s.PractitionerID),
		roomID:             copyID(s.RoomID),
		slot:               s.Slot,
		status:             s.Status,
		pricing:            s.Pricing,
		notes:              s.Notes,
		paymentReference:   copyString(s.PaymentReference),
		cancellationReason: copyString(s.CancellationReason),
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		deletedAt:          copyTime(s.DeletedAt),
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:                 b.id,
		ClientID:           b.clientID,
		ServiceID:          b.serviceID,
		LocationID:         b.locationID,
		PractitionerID:     copyID(b.practitionerID),
		RoomID:             copyID(b.roomID),
		Slot:               b.slot,
		Status:             b.status,
		Pricing:            b.pricing,
		Notes:              b.notes,
		PaymentReference:   copyString(b.paymentReference),
		CancellationReason: copyString(b.cancellationReason),
		CreatedAt:          b.createdAt,
		UpdatedAt:          b.updatedAt,
		DeletedAt:          copyTime(b.deletedAt),
	}
}

func (b *Booking) Confirm(now time.Time) error {
	return b.transition(StatusConfirmed, now)
}

func (b *Booking) Complete(now time.Time) error {
	return b.transition(StatusCompleted, now)
}

func (b *Booking) MarkNoShow(now time.Time) error {
	return b.transition(StatusNoShow, now)
}

func (b *Booking) Cancel(reason string, now time.Time) error {
	if err := b.transition(StatusCancelled, now); err != nil {
		return err
	}
	r := NewNote(reason).String()
	b.cancellationReason = &r
	b.notes = b.notes.Append(MarkerCancelled, r)
	return nil
}

// Reschedule moves the booking to slot. It is refused when less than cutoff
// remains before the current start; exactly cutoff is allowed.
func (b *Booking) Reschedule(slot TimeSlot, reason string, cutoff time.Duration, now time.Time) error {
	if err := b.CanReschedule(cutoff, now); err != nil {
		return err
	}
	b.slot = slot
	b.notes = b.notes.Append(MarkerRescheduled, reason)
	b.touch(now)
	return nil
}

// CanReschedule checks the status and the cutoff against the current start.
func (b *Booking) CanReschedule(cutoff time.Duration, now time.Time) error {
	if err := b.EnsureMutable(); err != nil {
		return err
	}
	if b.slot.Start().Sub(now) < cutoff {
		return errs.ErrRescheduleTooLate
	}
	return nil
}

func (b *Booking) Apply(c Changes, now time.Time) error {
	if err := b.EnsureMutable(); err != nil {
		return err
	}
	if c.PractitionerID != nil {
		b.practitionerID = copyID(c.PractitionerID)
	}
	if c.RoomID != nil {
		b.roomID = copyID(c.RoomID)
	}
	if c.Slot != nil {
		b.slot = *c.Slot
	}
	if c.Notes != nil {
		b.notes = *c.Notes
	}
	if c.PaymentReference != nil {
		b.paymentReference = copyString(c.PaymentReference)
	}
	b.touch(now)
	return nil
}

func (b *Booking) AssignPractitioner(practitionerID uuid.UUID, now time.Time) error {
	if err := b.EnsureMutable(); err != nil {
		return err
	}
	b.practitionerID = &practitionerID
	b.touch(now)
	return nil
}

// SoftDelete is only allowed once the booking reached a terminal status.
func (b *Booking) SoftDelete(now time.Time) error {
	if b.deletedAt != nil {
		return ErrAlreadyDeleted
	}
	if !b.status.IsTerminal() {
		return errs.ErrInvalidStateTransition
	}
	t := now.UTC()
	b.deletedAt = &t
	b.touch(now)
	return nil
}

func (b *Booking) IsActive() bool {
	return b.deletedAt == nil && b.status.IsActive()
}

func (b *Booking) IsDeleted() bool {
	return b.deletedAt != nil
}

func (b *Booking) transition(next Status, now time.Time) error {
	if b.deletedAt != nil || !b.status.CanTransitionTo(next) {
		return errs.Wrapf(errs.ErrInvalidStateTransition, "%s -> %s", b.status, next)
	}
	b.status = next
	b.touch(now)
	return nil
}

// EnsureMutable fails for terminal or deleted bookings.
func (b *Booking) EnsureMutable() error {
	if b.deletedAt != nil || b.status.IsTerminal() {
		return errs.Wrapf(errs.ErrInvalidStateTransition, "booking is %s", b.status)
	}
	return nil
}

func (b *Booking) touch(now time.Time) {
	b.updatedAt = now.UTC()
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) ClientID() uuid.UUID         { return b.clientID }
func (b *Booking) ServiceID() uuid.UUID        { return b.serviceID }
func (b *Booking) LocationID() uuid.UUID       { return b.locationID }
func (b *Booking) PractitionerID() *uuid.UUID  { return copyID(b.practitionerID) }
func (b *Booking) RoomID() *uuid.UUID          { return copyID(b.roomID) }
func (b *Booking) Slot() TimeSlot              { return b.slot }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Pricing() Pricing            { return b.pricing }
func (b *Booking) Notes() Note                 { return b.notes }
func (b *Booking) PaymentReference() *string   { return copyString(b.paymentReference) }
func (b *Booking) CancellationReason() *string { return copyString(b.cancellationReason) }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
func (b *Booking) DeletedAt() *time.Time       { return copyTime(b.deletedAt) }

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
