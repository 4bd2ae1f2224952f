package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

import (
	"context"
	"time"

	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/usecase/availability"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
}

// AvailabilityQueries answers advisory availability questions. Results are not
// reservations; the write path re-checks them under lock.
type AvailabilityQueries interface {
	IsAvailable(ctx context.Context, kind resource.Kind, resourceID uuid.UUID, start, end time.Time) (bool, error)
	AvailableResources(ctx context.Context, kind resource.Kind, serviceID uuid.UUID, start, end time.Time) ([]*ResourceView, error)
	BestCandidate(ctx context.Context, kind resource.Kind, serviceID uuid.UUID, start, end time.Time) (*ResourceView, error)
}

type availabilityQueriesImpl struct {
	reads     availability.Reads
	resolvers *availability.Factory
}

func NewAvailabilityQueries(reads availability.Reads, resolvers *availability.Factory) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, resolvers: resolvers}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, kind resource.Kind, resourceID uuid.UUID, start, end time.Time) (bool, error) {
	if err := validateWindow(kind, start, end); err != nil {
		return false, err
	}
	return q.resolvers.For(kind, q.reads).IsAvailable(ctx, resourceID, start, end, nil)
}

func (q *availabilityQueriesImpl) AvailableResources(ctx context.Context, kind resource.Kind, serviceID uuid.UUID, start, end time.Time) ([]*ResourceView, error) {
	if err := validateWindow(kind, start, end); err != nil {
		return nil, err
	}
	list, err := q.resolvers.For(kind, q.reads).AvailableResources(ctx, serviceID, start, end, nil)
	if err != nil {
		return nil, err
	}
	views := make([]*ResourceView, 0, len(list))
	for _, r := range list {
		views = append(views, toResourceView(r))
	}
	return views, nil
}

func (q *availabilityQueriesImpl) BestCandidate(ctx context.Context, kind resource.Kind, serviceID uuid.UUID, start, end time.Time) (*ResourceView, error) {
	if err := validateWindow(kind, start, end); err != nil {
		return nil, err
	}
	best, err := q.resolvers.For(kind, q.reads).FindBest(ctx, serviceID, start, end, nil)
	if err != nil {
		return nil, err
	}
	return toResourceView(best), nil
}

func validateWindow(kind resource.Kind, start, end time.Time) error {
	if !kind.IsValid() {
		return errs.Wrapf(errs.ErrValidation, "unknown resource kind %q", kind)
	}
	if !end.After(start) {
		return errs.ErrInvalidTimeSlot
	}
	return nil
}

func toResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:           r.ID(),
		Kind:         r.Kind().String(),
		Name:         r.Name(),
		DisplayOrder: r.DisplayOrder(),
	}
}
