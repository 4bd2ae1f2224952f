//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/memstore"
	"booking-scheduler/internal/usecase/shared"
	"booking-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uow := memstore.NewUoW(store)
	b := builder.NewBookingBuilder().MustBuildDomain()

	t.Run("rolled back writes are invisible", func(t *testing.T) {
		boom := errors.New("boom")
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Bookings().Create(ctx, b))
			// visible inside the transaction
			_, readErr := tx.Reads().BookingByID(ctx, b.ID())
			require.NoError(t, readErr)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = uow.CommandReads().BookingByID(ctx, b.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("committed writes are visible", func(t *testing.T) {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Create(ctx, b)
		})
		require.NoError(t, err)

		got, err := uow.CommandReads().BookingByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, b.ID(), got.ID())
	})

	t.Run("cancelled context never commits", func(t *testing.T) {
		other := builder.NewBookingBuilder().MustBuildDomain()
		cctx, cancel := context.WithCancel(ctx)
		err := uow.Within(cctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Bookings().Create(ctx, other))
			cancel()
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)

		_, err = uow.CommandReads().BookingByID(ctx, other.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUoW_LockResourcesSerializes(t *testing.T) {
	ctx := context.Background()
	uow := memstore.NewUoW(memstore.New())
	key := resource.LockKey(resource.KindRoom, uuid.New())

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.LockResources(ctx, key); err != nil {
					return err
				}
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestUoW_LockWaitHonoursContext(t *testing.T) {
	uow := memstore.NewUoW(memstore.New())
	key := resource.LockKey(resource.KindPractitioner, uuid.New())

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.LockResources(ctx, key))
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.LockResources(ctx, key)
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIdempotency_TryInsert(t *testing.T) {
	ctx := context.Background()
	uow := memstore.NewUoW(memstore.New())
	key := uuid.New()
	bookingID := uuid.New()
	expires := builder.BaseTime.Add(time.Hour)

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, key, "hash", expires)
		require.NoError(t, err)
		assert.True(t, inserted)
		return tx.Idempotency().MarkCompleted(ctx, key, bookingID)
	})
	require.NoError(t, err)

	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, key, "hash", expires)
		require.NoError(t, err)
		assert.False(t, inserted)

		rec, err := tx.Reads().IdempotencyByKey(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyCompleted, rec.Status)
		assert.Equal(t, bookingID, *rec.ResultBookingID)

		claimed, err := tx.Idempotency().ClaimExpired(ctx, key, "other", builder.BaseTime, expires)
		require.NoError(t, err)
		assert.False(t, claimed)

		claimed, err = tx.Idempotency().ClaimExpired(ctx, key, "other", expires, expires.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, claimed)
		return nil
	})
	require.NoError(t, err)
}

func TestReads_ActiveBookings(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	practitioner := uuid.New()

	active := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.PractitionerID = &practitioner
	}).MustBuildDomain()
	cancelled := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.PractitionerID = &practitioner
		b.Status = booking.StatusCancelled
	}).MustBuildDomain()
	otherPractitioner := builder.NewBookingBuilder().MustBuildDomain()
	for _, b := range []*booking.Booking{active, cancelled, otherPractitioner} {
		store.PutBooking(b)
	}

	reads := memstore.NewReadStore(store)
	start := builder.BaseTime

	entries, err := reads.ActiveBookings(ctx, resource.KindPractitioner, practitioner, start.Add(-time.Hour), start.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, active.ID(), entries[0].BookingID)

	// horizon ending exactly at the booking start excludes it
	entries, err = reads.ActiveBookings(ctx, resource.KindPractitioner, practitioner, start.Add(-time.Hour), start)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadStore_ExcludesDeleted(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusCancelled
	}).MustBuildDomain()
	require.NoError(t, b.SoftDelete(builder.BaseTime))
	store.PutBooking(b)

	reads := memstore.NewReadStore(store)
	_, err := reads.FindByID(ctx, b.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	items, err := reads.FindByClientFirstPage(ctx, b.ClientID(), 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join("..", "..", "..", "seed", "demo.yaml")
	seed, err := memstore.LoadSeedFile(path)
	require.NoError(t, err)

	store := memstore.New()
	require.NoError(t, store.Apply(seed))

	ctx := context.Background()
	reads := memstore.NewReadStore(store)
	serviceID := uuid.MustParse("3c5d7e9f-1a2b-4c6d-8e0f-a1b2c3d4e531")

	practitioners, err := reads.EligibleResources(ctx, resource.KindPractitioner, serviceID)
	require.NoError(t, err)
	assert.Len(t, practitioners, 2)

	rooms, err := reads.EligibleResources(ctx, resource.KindRoom, serviceID)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	sched, err := reads.ScheduleFor(ctx, practitioners[0].ID())
	require.NoError(t, err)
	christmas := time.Date(2030, 12, 25, 10, 0, 0, 0, time.UTC)
	assert.False(t, sched.Covers(christmas, christmas.Add(time.Hour), time.UTC))
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resources:\n  - id: 0b6a8f60-5d3e-4e2a-8a1c-2f7d1e9b4c11\n    kind: desk\n    name: Desk\n"), 0o600))

	seed, err := memstore.LoadSeedFile(path)
	require.NoError(t, err)
	assert.ErrorIs(t, memstore.New().Apply(seed), resource.ErrInvalidKind)
}
