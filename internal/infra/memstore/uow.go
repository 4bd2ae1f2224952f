package memstore

import (
	"context"
	"sort"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

// Within buffers writes and publishes them only when fn succeeds and ctx is
// still live. Held keys are released on every path.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{
		store:    u.store,
		held:     make(map[string]bool),
		bookings: make(map[uuid.UUID]booking.Snapshot),
		idem:     make(map[uuid.UUID]shared.IdempotencyRecord),
	}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &reads{store: u.store}
}

type memTx struct {
	store    *Store
	held     map[string]bool
	order    []string
	bookings map[uuid.UUID]booking.Snapshot
	idem     map[uuid.UUID]shared.IdempotencyRecord
}

func (t *memTx) LockResources(ctx context.Context, keys ...string) error {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	for _, key := range sorted {
		if err := t.lock(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (t *memTx) lock(ctx context.Context, key string) error {
	if t.held[key] {
		return nil
	}
	if err := t.store.locks.lock(ctx, key); err != nil {
		return err
	}
	t.held[key] = true
	t.order = append(t.order, key)
	return nil
}

func (t *memTx) release() {
	for i := len(t.order) - 1; i >= 0; i-- {
		t.store.locks.unlock(t.order[i])
	}
	t.order = nil
	t.held = map[string]bool{}
}

func (t *memTx) commit() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for id, snap := range t.bookings {
		t.store.bookings[id] = snap
	}
	for key, rec := range t.idem {
		t.store.idempotency[key] = rec
	}
}

func (t *memTx) Bookings() shared.BookingRepository {
	return &bookingRepo{tx: t}
}

func (t *memTx) Idempotency() shared.IdempotencyRepository {
	return &idempotencyRepo{tx: t}
}

func (t *memTx) Reads() shared.CommandReads {
	return &reads{store: t.store, tx: t}
}

type bookingRepo struct {
	tx *memTx
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.tx.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, err := r.tx.booking(b.ID()); err != nil {
		return err
	}
	r.tx.bookings[b.ID()] = b.Snapshot()
	return nil
}

// booking reads through the write buffer, deleted rows included.
func (t *memTx) booking(id uuid.UUID) (booking.Snapshot, error) {
	if snap, ok := t.bookings[id]; ok {
		return snap, nil
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	snap, ok := t.store.bookings[id]
	if !ok {
		return booking.Snapshot{}, t.store.notFound("booking")
	}
	return snap, nil
}

type idempotencyRepo struct {
	tx *memTx
}

func idempotencyLockKey(key uuid.UUID) string {
	return "idempotency:" + key.String()
}

func (r *idempotencyRepo) TryInsert(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	if err := r.tx.lock(ctx, idempotencyLockKey(key)); err != nil {
		return false, err
	}
	if _, ok := r.tx.idempotency(key); ok {
		return false, nil
	}
	r.tx.idem[key] = shared.IdempotencyRecord{
		Key:         key,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) MarkCompleted(_ context.Context, key uuid.UUID, bookingID uuid.UUID) error {
	rec, ok := r.tx.idempotency(key)
	if !ok {
		return r.tx.store.notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.tx.idem[key] = rec
	return nil
}

func (r *idempotencyRepo) ClaimExpired(ctx context.Context, key uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error) {
	if err := r.tx.lock(ctx, idempotencyLockKey(key)); err != nil {
		return false, err
	}
	rec, ok := r.tx.idempotency(key)
	if !ok || rec.ExpiresAt.After(now) {
		return false, nil
	}
	r.tx.idem[key] = shared.IdempotencyRecord{
		Key:         key,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (t *memTx) idempotency(key uuid.UUID) (shared.IdempotencyRecord, bool) {
	if rec, ok := t.idem[key]; ok {
		return rec, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	rec, ok := t.store.idempotency[key]
	return rec, ok
}

// bookingLockKey serializes writers of one booking row.
func bookingLockKey(id uuid.UUID) string {
	return "booking:" + id.String()
}
