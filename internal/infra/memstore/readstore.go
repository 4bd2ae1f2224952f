package memstore

import (
	"context"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/usecase/availability"
	"booking-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves the query side from committed state.
type ReadStore struct {
	*reads
}

func NewReadStore(store *Store) *ReadStore {
	return &ReadStore{reads: &reads{store: store}}
}

var (
	_ queries.BookingReadStore = (*ReadStore)(nil)
	_ availability.Reads       = (*ReadStore)(nil)
)

func (r *ReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	snap, err := r.store.committedBooking(id)
	if err != nil {
		return nil, err
	}
	if snap.DeletedAt != nil {
		return nil, r.store.notFound("booking")
	}
	return r.view(snap), nil
}

func (r *ReadStore) FindStartingBetween(_ context.Context, from, to time.Time) ([]*queries.BookingListItem, error) {
	return r.list(func(snap booking.Snapshot) bool {
		return startsBetween(snap, from, to)
	}, 0), nil
}

func (r *ReadStore) FindByResourceStartingBetween(_ context.Context, kind resource.Kind, resourceID uuid.UUID, from, to time.Time) ([]*queries.BookingListItem, error) {
	return r.list(func(snap booking.Snapshot) bool {
		return assignedTo(snap, kind, resourceID) && startsBetween(snap, from, to)
	}, 0), nil
}

func (r *ReadStore) FindByClientFirstPage(_ context.Context, clientID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	return r.list(func(snap booking.Snapshot) bool {
		return snap.ClientID == clientID
	}, int(limit)), nil
}

func (r *ReadStore) FindByClientKeyset(_ context.Context, clientID uuid.UUID, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	return r.list(func(snap booking.Snapshot) bool {
		if snap.ClientID != clientID {
			return false
		}
		start := snap.Slot.Start()
		return start.After(afterStart) || (start.Equal(afterStart) && snap.ID.String() > afterID.String())
	}, int(limit)), nil
}

func (r *ReadStore) list(match func(booking.Snapshot) bool, limit int) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, 0)
	for _, snap := range r.snapshots() {
		if snap.DeletedAt != nil || !match(snap) {
			continue
		}
		items = append(items, r.listItem(snap))
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items
}

func startsBetween(snap booking.Snapshot, from, to time.Time) bool {
	start := snap.Slot.Start()
	return !start.Before(from) && start.Before(to)
}

func (r *ReadStore) listItem(snap booking.Snapshot) *queries.BookingListItem {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	item := &queries.BookingListItem{
		ID:             snap.ID,
		ClientID:       snap.ClientID,
		ServiceID:      snap.ServiceID,
		PractitionerID: snap.PractitionerID,
		RoomID:         snap.RoomID,
		StartTime:      snap.Slot.Start(),
		EndTime:        snap.Slot.End(),
		Status:         snap.Status.String(),
		Total:          snap.Pricing.Total.String(),
	}
	if svc, ok := r.store.services[snap.ServiceID]; ok {
		item.ServiceName = svc.Name()
	}
	return item
}

func (r *ReadStore) view(snap booking.Snapshot) *queries.BookingView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	v := &queries.BookingView{
		ID:                 snap.ID,
		ClientID:           snap.ClientID,
		ClientName:         r.store.clients[snap.ClientID],
		ServiceID:          snap.ServiceID,
		LocationID:         snap.LocationID,
		PractitionerID:     snap.PractitionerID,
		RoomID:             snap.RoomID,
		StartTime:          snap.Slot.Start(),
		EndTime:            snap.Slot.End(),
		Status:             snap.Status.String(),
		ServicePrice:       snap.Pricing.ServicePrice.String(),
		Deposit:            snap.Pricing.Deposit.String(),
		Discount:           snap.Pricing.Discount.String(),
		CreditsApplied:     snap.Pricing.CreditsApplied.String(),
		Total:              snap.Pricing.Total.String(),
		PaymentReference:   snap.PaymentReference,
		CancellationReason: snap.CancellationReason,
		CreatedAt:          snap.CreatedAt,
		UpdatedAt:          snap.UpdatedAt,
	}
	if svc, ok := r.store.services[snap.ServiceID]; ok {
		v.ServiceName = svc.Name()
	}
	if !snap.Notes.IsEmpty() {
		notes := snap.Notes.String()
		v.Notes = &notes
	}
	v.PractitionerName = r.resourceName(snap.PractitionerID)
	v.RoomName = r.resourceName(snap.RoomID)
	return v
}

// resourceName expects store.mu to be held.
func (r *ReadStore) resourceName(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	res, ok := r.store.resources[*id]
	if !ok {
		return nil
	}
	name := res.Name()
	return &name
}
