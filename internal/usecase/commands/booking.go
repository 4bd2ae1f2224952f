package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/service"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/pkg/clock"
	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/pkg/metrics"
	"booking-scheduler/internal/pkg/patch"
	"booking-scheduler/internal/pkg/tracing"
	"booking-scheduler/internal/usecase/availability"
	"booking-scheduler/internal/usecase/queries"
	"booking-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/blake2b"
)

type CreateBookingParams struct {
	ClientID         uuid.UUID  `json:"client_id"`
	ServiceID        uuid.UUID  `json:"service_id"`
	LocationID       uuid.UUID  `json:"location_id"`
	PractitionerID   *uuid.UUID `json:"practitioner_id,omitempty"`
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	Start            time.Time  `json:"start"`
	End              time.Time  `json:"end"`
	Notes            string     `json:"notes,omitempty"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
}

// UpdateBookingParams holds a partial update; nil fields are left unchanged.
type UpdateBookingParams struct {
	PractitionerID   *uuid.UUID
	RoomID           *uuid.UUID
	Start            *time.Time
	End              *time.Time
	Notes            *string
	PaymentReference *string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type SchedulerOptions struct {
	// RequireConfirmation makes new bookings start Pending instead of Confirmed.
	RequireConfirmation bool
	RescheduleCutoff    time.Duration
	IdempotencyTTL      time.Duration
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (*queries.BookingView, error)
	RescheduleBooking(ctx context.Context, id uuid.UUID, start, end time.Time, reason string) (*queries.BookingView, error)
	AssignPractitioner(ctx context.Context, id uuid.UUID, practitionerID *uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID, reason string) error
	ConfirmBooking(ctx context.Context, id uuid.UUID) error
	CompleteBooking(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	resolvers *availability.Factory
	pricing   booking.PriceCalculator
	queries   queries.BookingQueries
	publisher shared.EventPublisher
	clock     clock.Clock
	metrics   *metrics.Collector
	tracer    trace.Tracer
	opts      SchedulerOptions
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	resolvers *availability.Factory,
	pricing booking.PriceCalculator,
	bookingQueries queries.BookingQueries,
	publisher shared.EventPublisher,
	clock clock.Clock,
	collector *metrics.Collector,
	opts SchedulerOptions,
) BookingCommands {
	if publisher == nil {
		publisher = shared.NopPublisher{}
	}
	if opts.IdempotencyTTL <= 0 {
		opts.IdempotencyTTL = 24 * time.Hour
	}
	return &bookingCommandsImpl{
		uow:       uow,
		resolvers: resolvers,
		pricing:   pricing,
		queries:   bookingQueries,
		publisher: publisher,
		clock:     clock,
		metrics:   collector,
		tracer:    tracing.Tracer(),
		opts:      opts,
	}
}

func (s *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	params CreateBookingParams,
	idempotencyKey *uuid.UUID,
) (result *CreateBookingResult, err error) {
	ctx, done := s.observe(ctx, "create")
	defer func() { done(err) }()

	slot, err := booking.NewTimeSlot(params.Start, params.End)
	if err != nil {
		return nil, err
	}

	var (
		created    *booking.Booking
		replayedID *uuid.UUID
	)
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, replayedID = nil, nil
		if idempotencyKey != nil {
			id, claimErr := s.claimIdempotencyKey(ctx, tx, *idempotencyKey, fingerprint(params))
			if claimErr != nil {
				return claimErr
			}
			if id != nil {
				replayedID = id
				return nil
			}
		}

		b, createErr := s.createInTx(ctx, tx, params, slot)
		if createErr != nil {
			return createErr
		}
		if idempotencyKey != nil {
			if markErr := tx.Idempotency().MarkCompleted(ctx, *idempotencyKey, b.ID()); markErr != nil {
				return markErr
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, s.translate(err)
	}

	if replayedID != nil {
		view, viewErr := s.queries.GetByID(ctx, *replayedID)
		if viewErr != nil {
			return nil, viewErr
		}
		return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
	}

	s.afterCommit(ctx, shared.EventBookingCreated, created, "")
	view, err := s.queries.GetByID(ctx, created.ID())
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view}, nil
}

func (s *bookingCommandsImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	params CreateBookingParams,
	slot booking.TimeSlot,
) (*booking.Booking, error) {
	reads := tx.Reads()

	exists, err := reads.ClientExists(ctx, params.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrClientNotFound
	}

	svc, err := s.activeService(ctx, reads, params.ServiceID)
	if err != nil {
		return nil, err
	}

	if err := tx.LockResources(ctx, lockKeys(params.PractitionerID, params.RoomID)...); err != nil {
		return nil, err
	}
	if err := s.requireAvailable(ctx, reads, resource.KindPractitioner, params.PractitionerID, slot, nil); err != nil {
		return nil, err
	}
	if err := s.requireAvailable(ctx, reads, resource.KindRoom, params.RoomID, slot, nil); err != nil {
		return nil, err
	}

	pricing, err := s.pricing.Calculate(svc.Price())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	initial := booking.StatusConfirmed
	if s.opts.RequireConfirmation {
		initial = booking.StatusPending
	}
	b, err := booking.NewBooking(booking.Draft{
		ClientID:         params.ClientID,
		ServiceID:        params.ServiceID,
		LocationID:       params.LocationID,
		PractitionerID:   params.PractitionerID,
		RoomID:           params.RoomID,
		Slot:             slot,
		Notes:            booking.NewNote(params.Notes),
		PaymentReference: params.PaymentReference,
	}, pricing, initial, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := tx.Bookings().Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// claimIdempotencyKey returns the booking id to replay, or nil when the caller
// owns the key and must create the booking.
func (s *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key uuid.UUID, hash string) (*uuid.UUID, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.opts.IdempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, hash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if !existing.ExpiresAt.After(now) {
		claimed, claimErr := tx.Idempotency().ClaimExpired(ctx, key, hash, now, expiresAt)
		if claimErr != nil {
			return nil, claimErr
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != hash {
		return nil, errs.ErrIdempotencyConflict
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (s *bookingCommandsImpl) UpdateBooking(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (view *queries.BookingView, err error) {
	ctx, done := s.observe(ctx, "update")
	defer func() { done(err) }()

	var updated *booking.Booking
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, loadErr := s.loadForUpdate(ctx, tx, id)
		if loadErr != nil {
			return loadErr
		}
		if mutErr := b.EnsureMutable(); mutErr != nil {
			return mutErr
		}

		slot := b.Slot()
		if params.Start != nil || params.End != nil {
			newSlot, slotErr := booking.NewTimeSlot(patch.Coalesce(params.Start, slot.Start()), patch.Coalesce(params.End, slot.End()))
			if slotErr != nil {
				return slotErr
			}
			slot = newSlot
		}
		slotChanged := !slot.Equal(b.Slot())

		practitionerID := patch.Or(params.PractitionerID, b.PractitionerID())
		roomID := patch.Or(params.RoomID, b.RoomID())
		checkPractitioner := slotChanged || !sameID(practitionerID, b.PractitionerID())
		checkRoom := slotChanged || !sameID(roomID, b.RoomID())

		var keys []string
		if checkPractitioner {
			keys = append(keys, lockKeys(practitionerID, nil)...)
		}
		if checkRoom {
			keys = append(keys, lockKeys(nil, roomID)...)
		}
		if lockErr := tx.LockResources(ctx, keys...); lockErr != nil {
			return lockErr
		}

		reads := tx.Reads()
		if checkPractitioner {
			if availErr := s.requireAvailable(ctx, reads, resource.KindPractitioner, practitionerID, slot, &id); availErr != nil {
				return availErr
			}
		}
		if checkRoom {
			if availErr := s.requireAvailable(ctx, reads, resource.KindRoom, roomID, slot, &id); availErr != nil {
				return availErr
			}
		}

		changes := booking.Changes{
			PractitionerID:   params.PractitionerID,
			RoomID:           params.RoomID,
			PaymentReference: params.PaymentReference,
		}
		if slotChanged {
			changes.Slot = &slot
		}
		if params.Notes != nil {
			note := booking.NewNote(*params.Notes)
			changes.Notes = &note
		}
		if applyErr := b.Apply(changes, s.clock.Now()); applyErr != nil {
			return applyErr
		}
		if saveErr := tx.Bookings().Update(ctx, b); saveErr != nil {
			return saveErr
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, s.translate(err)
	}

	s.afterCommit(ctx, shared.EventBookingUpdated, updated, "")
	return s.queries.GetByID(ctx, id)
}

func (s *bookingCommandsImpl) RescheduleBooking(ctx context.Context, id uuid.UUID, start, end time.Time, reason string) (view *queries.BookingView, err error) {
	ctx, done := s.observe(ctx, "reschedule")
	defer func() { done(err) }()

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, loadErr := s.loadForUpdate(ctx, tx, id)
		if loadErr != nil {
			return loadErr
		}
		now := s.clock.Now()
		if checkErr := b.CanReschedule(s.opts.RescheduleCutoff, now); checkErr != nil {
			return checkErr
		}

		if lockErr := tx.LockResources(ctx, lockKeys(b.PractitionerID(), b.RoomID())...); lockErr != nil {
			return lockErr
		}
		reads := tx.Reads()
		if availErr := s.requireAvailable(ctx, reads, resource.KindPractitioner, b.PractitionerID(), slot, &id); availErr != nil {
			return availErr
		}
		if availErr := s.requireAvailable(ctx, reads, resource.KindRoom, b.RoomID(), slot, &id); availErr != nil {
			return availErr
		}

		if rescheduleErr := b.Reschedule(slot, reason, s.opts.RescheduleCutoff, now); rescheduleErr != nil {
			return rescheduleErr
		}
		if saveErr := tx.Bookings().Update(ctx, b); saveErr != nil {
			return saveErr
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, s.translate(err)
	}

	s.afterCommit(ctx, shared.EventBookingRescheduled, updated, reason)
	return s.queries.GetByID(ctx, id)
}

// AssignPractitioner sets the practitioner of a booking. Without an explicit
// id the best eligible practitioner is chosen.
func (s *bookingCommandsImpl) AssignPractitioner(ctx context.Context, id uuid.UUID, practitionerID *uuid.UUID) (view *queries.BookingView, err error) {
	ctx, done := s.observe(ctx, "assign_practitioner")
	defer func() { done(err) }()

	var updated *booking.Booking
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, loadErr := s.loadForUpdate(ctx, tx, id)
		if loadErr != nil {
			return loadErr
		}
		if mutErr := b.EnsureMutable(); mutErr != nil {
			return mutErr
		}

		reads := tx.Reads()
		chosen := practitionerID
		if chosen != nil {
			if lockErr := tx.LockResources(ctx, resource.LockKey(resource.KindPractitioner, *chosen)); lockErr != nil {
				return lockErr
			}
			if availErr := s.requireAvailable(ctx, reads, resource.KindPractitioner, chosen, b.Slot(), &id); availErr != nil {
				return availErr
			}
		} else {
			best, bestErr := s.bestPractitioner(ctx, tx, b)
			if bestErr != nil {
				return bestErr
			}
			chosenID := best.ID()
			chosen = &chosenID
		}

		if assignErr := b.AssignPractitioner(*chosen, s.clock.Now()); assignErr != nil {
			return assignErr
		}
		if saveErr := tx.Bookings().Update(ctx, b); saveErr != nil {
			return saveErr
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, s.translate(err)
	}

	s.afterCommit(ctx, shared.EventBookingAssigned, updated, "")
	return s.queries.GetByID(ctx, id)
}

// bestPractitioner locks every eligible practitioner so the choice cannot be
// invalidated before commit.
func (s *bookingCommandsImpl) bestPractitioner(ctx context.Context, tx shared.Tx, b *booking.Booking) (*resource.Resource, error) {
	resolver := s.resolvers.Practitioners(tx.Reads())
	eligible, err := resolver.Eligible(ctx, b.ServiceID())
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(eligible))
	for _, r := range eligible {
		keys = append(keys, r.LockKey())
	}
	if err := tx.LockResources(ctx, keys...); err != nil {
		return nil, err
	}
	id := b.ID()
	return resolver.FindBest(ctx, b.ServiceID(), b.Slot().Start(), b.Slot().End(), &id)
}

func (s *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, reason string) error {
	return s.transition(ctx, "cancel", id, shared.EventBookingCancelled, reason, func(b *booking.Booking, now time.Time) error {
		return b.Cancel(reason, now)
	})
}

func (s *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "confirm", id, shared.EventBookingConfirmed, "", (*booking.Booking).Confirm)
}

func (s *bookingCommandsImpl) CompleteBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "complete", id, shared.EventBookingCompleted, "", (*booking.Booking).Complete)
}

func (s *bookingCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "no_show", id, shared.EventBookingNoShow, "", (*booking.Booking).MarkNoShow)
}

func (s *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, "delete", id, shared.EventBookingDeleted, "", (*booking.Booking).SoftDelete)
}

// transition applies a status change that leaves the time window untouched,
// so no availability check or resource lock is needed.
func (s *bookingCommandsImpl) transition(
	ctx context.Context,
	operation string,
	id uuid.UUID,
	event shared.EventType,
	reason string,
	apply func(b *booking.Booking, now time.Time) error,
) (err error) {
	ctx, done := s.observe(ctx, operation)
	defer func() { done(err) }()

	var updated *booking.Booking
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, loadErr := s.loadForUpdate(ctx, tx, id)
		if loadErr != nil {
			return loadErr
		}
		if applyErr := apply(b, s.clock.Now()); applyErr != nil {
			return applyErr
		}
		if saveErr := tx.Bookings().Update(ctx, b); saveErr != nil {
			return saveErr
		}
		updated = b
		return nil
	})
	if err != nil {
		return s.translate(err)
	}

	s.afterCommit(ctx, event, updated, reason)
	return nil
}

func (s *bookingCommandsImpl) loadForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Reads().BookingForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *bookingCommandsImpl) activeService(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*service.Service, error) {
	svc, err := reads.ServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.Active() {
		return nil, errs.ErrServiceNotActive
	}
	return svc, nil
}

// requireAvailable is a no-op for an unassigned resource.
func (s *bookingCommandsImpl) requireAvailable(
	ctx context.Context,
	reads shared.CommandReads,
	kind resource.Kind,
	id *uuid.UUID,
	slot booking.TimeSlot,
	exclude *uuid.UUID,
) error {
	if id == nil {
		return nil
	}
	ok, err := s.resolvers.For(kind, reads).IsAvailable(ctx, *id, slot.Start(), slot.End(), exclude)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Wrapf(errs.ErrResourceNotAvailable, "%s %s", kind, *id)
	}
	return nil
}

// translate maps infrastructure failures onto the caller-facing taxonomy.
func (s *bookingCommandsImpl) translate(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, errs.ErrResourceNotAvailable)
	}
	if errs.CodeOf(err) != errs.CodeInternal {
		return err
	}
	// timeouts and cancellations never leave a commit behind and are safe to retry
	return errs.Mark(err, errs.ErrPersistenceFailure)
}

func (s *bookingCommandsImpl) afterCommit(ctx context.Context, eventType shared.EventType, b *booking.Booking, reason string) {
	if b == nil {
		return
	}
	s.metrics.ObserveTransition(b.Status().String())
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "event publisher panicked", "event", string(eventType), "booking_id", b.ID().String(), "panic", r)
		}
	}()
	s.publisher.Publish(context.WithoutCancel(ctx), shared.BookingEvent{
		ID:             uuid.New(),
		Type:           eventType,
		BookingID:      b.ID(),
		ClientID:       b.ClientID(),
		PractitionerID: b.PractitionerID(),
		RoomID:         b.RoomID(),
		Status:         b.Status().String(),
		StartTime:      b.Slot().Start(),
		EndTime:        b.Slot().End(),
		Reason:         reason,
		OccurredAt:     s.clock.Now(),
	})
}

func (s *bookingCommandsImpl) observe(ctx context.Context, operation string) (context.Context, func(error)) {
	started := time.Now()
	ctx, span := s.tracer.Start(ctx, "BookingScheduler."+operation,
		trace.WithAttributes(attribute.String("booking.operation", operation)))
	return ctx, func(err error) {
		s.metrics.ObserveOperation(operation, started, err)
		if err != nil {
			span.SetAttributes(attribute.String("booking.error_code", string(errs.CodeOf(err))))
			if errs.IsRetryable(err) {
				slog.WarnContext(ctx, "scheduler operation failed", "operation", operation, "error", err.Error())
			}
		}
		tracing.End(span, err)
	}
}

// lockKeys returns the serialization keys of the assigned resources, sorted.
func lockKeys(practitionerID, roomID *uuid.UUID) []string {
	keys := make([]string, 0, 2)
	if practitionerID != nil {
		keys = append(keys, resource.LockKey(resource.KindPractitioner, *practitionerID))
	}
	if roomID != nil {
		keys = append(keys, resource.LockKey(resource.KindRoom, *roomID))
	}
	sort.Strings(keys)
	return keys
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// fingerprint identifies a create request for idempotent replay.
func fingerprint(params CreateBookingParams) string {
	params.Start = params.Start.UTC()
	params.End = params.End.UTC()
	data, _ := json.Marshal(params)
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
