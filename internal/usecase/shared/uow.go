package shared

import (
	"context"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/service"
	"booking-scheduler/internal/usecase/availability"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction, retried on serialization failures.
	// A commit is never attempted once ctx is done.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	// LockResources blocks until every key is held; keys are released when the
	// transaction ends. Keys are acquired in sorted order.
	LockResources(ctx context.Context, keys ...string) error
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type CommandReads interface {
	availability.Reads

	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BookingForUpdate also locks the booking row until the transaction ends.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ClientExists(ctx context.Context, id uuid.UUID) (bool, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
}

type IdempotencyRepository interface {
	// TryInsert reserves key in processing state; an existing key is left untouched.
	TryInsert(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, key uuid.UUID, bookingID uuid.UUID) error
	// ClaimExpired takes over an expired key for a new request.
	ClaimExpired(ctx context.Context, key uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error)
}
