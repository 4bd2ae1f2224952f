package memstore

import (
	"context"
	"sort"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/calendar"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/domain/service"
	"booking-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// reads serves committed state, overlaid with tx's buffered writes when tx is set.
type reads struct {
	store *Store
	tx    *memTx
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		snap booking.Snapshot
		err  error
	)
	if r.tx != nil {
		snap, err = r.tx.booking(id)
	} else {
		snap, err = r.store.committedBooking(id)
	}
	if err != nil {
		return nil, err
	}
	if snap.DeletedAt != nil {
		return nil, r.store.notFound("booking")
	}
	return booking.Reconstruct(snap), nil
}

func (r *reads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.tx != nil {
		if err := r.tx.lock(ctx, bookingLockKey(id)); err != nil {
			return nil, err
		}
	}
	return r.BookingByID(ctx, id)
}

func (r *reads) ClientExists(_ context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.clients[id]
	return ok, nil
}

func (r *reads) ServiceByID(_ context.Context, id uuid.UUID) (*service.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	svc, ok := r.store.services[id]
	if !ok {
		return nil, r.store.notFound("service")
	}
	return svc, nil
}

func (r *reads) IdempotencyByKey(_ context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		rec shared.IdempotencyRecord
		ok  bool
	)
	if r.tx != nil {
		rec, ok = r.tx.idempotency(key)
	} else {
		r.store.mu.RLock()
		rec, ok = r.store.idempotency[key]
		r.store.mu.RUnlock()
	}
	if !ok {
		return nil, r.store.notFound("idempotency key")
	}
	return &rec, nil
}

func (r *reads) ResourceByID(_ context.Context, kind resource.Kind, id uuid.UUID) (*resource.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	res, ok := r.store.resources[id]
	if !ok || res.Kind() != kind {
		return nil, r.store.notFound(kind.String())
	}
	return res, nil
}

func (r *reads) EligibleResources(_ context.Context, kind resource.Kind, serviceID uuid.UUID) ([]*resource.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*resource.Resource
	for _, id := range r.store.eligibility[serviceID] {
		if res, ok := r.store.resources[id]; ok && res.Kind() == kind {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *reads) ScheduleFor(_ context.Context, resourceID uuid.UUID) (*schedule.Schedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	sched, ok := r.store.schedules[resourceID]
	if !ok {
		return nil, r.store.notFound("schedule")
	}
	return sched, nil
}

func (r *reads) ActiveBookings(_ context.Context, kind resource.Kind, resourceID uuid.UUID, from, to time.Time) ([]calendar.Entry, error) {
	var entries []calendar.Entry
	for _, snap := range r.snapshots() {
		if snap.DeletedAt != nil || !snap.Status.IsActive() || !assignedTo(snap, kind, resourceID) {
			continue
		}
		if snap.Slot.End().After(from) && snap.Slot.Start().Before(to) {
			entries = append(entries, calendar.Entry{
				BookingID: snap.ID,
				Start:     snap.Slot.Start(),
				End:       snap.Slot.End(),
				Status:    snap.Status,
			})
		}
	}
	return entries, nil
}

// snapshots merges committed bookings with the transaction's buffer.
func (r *reads) snapshots() []booking.Snapshot {
	r.store.mu.RLock()
	out := make([]booking.Snapshot, 0, len(r.store.bookings))
	for id, snap := range r.store.bookings {
		if r.tx != nil {
			if _, shadowed := r.tx.bookings[id]; shadowed {
				continue
			}
		}
		out = append(out, snap)
	}
	r.store.mu.RUnlock()

	if r.tx != nil {
		for _, snap := range r.tx.bookings {
			out = append(out, snap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Slot.Start().Equal(out[j].Slot.Start()) {
			return out[i].Slot.Start().Before(out[j].Slot.Start())
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func assignedTo(snap booking.Snapshot, kind resource.Kind, id uuid.UUID) bool {
	var assigned *uuid.UUID
	if kind == resource.KindRoom {
		assigned = snap.RoomID
	} else {
		assigned = snap.PractitionerID
	}
	return assigned != nil && *assigned == id
}

func (s *Store) committedBooking(id uuid.UUID) (booking.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.bookings[id]
	if !ok {
		return booking.Snapshot{}, s.notFound("booking")
	}
	return snap, nil
}
