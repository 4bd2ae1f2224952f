package availability

import (
	"context"
	"time"

	"booking-scheduler/internal/domain/calendar"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// Selector picks one resource out of a non-empty, ordered candidate list.
type Selector interface {
	Select(ctx context.Context, candidates []*resource.Resource, start time.Time, exclude *uuid.UUID) (*resource.Resource, error)
}

// FirstByPriority takes the first candidate; candidates arrive in display order.
type FirstByPriority struct{}

func (FirstByPriority) Select(_ context.Context, candidates []*resource.Resource, _ time.Time, _ *uuid.UUID) (*resource.Resource, error) {
	if len(candidates) == 0 {
		return nil, errs.ErrResourceNotAvailable
	}
	return candidates[0], nil
}

// LeastLoaded picks the candidate with the fewest active bookings on start's
// local date. Ties keep candidate order, which is (display order, id).
type LeastLoaded struct {
	reads Reads
	kind  resource.Kind
	loc   *time.Location
}

func NewLeastLoaded(reads Reads, kind resource.Kind, loc *time.Location) *LeastLoaded {
	return &LeastLoaded{reads: reads, kind: kind, loc: loc}
}

func (s *LeastLoaded) Select(ctx context.Context, candidates []*resource.Resource, start time.Time, exclude *uuid.UUID) (*resource.Resource, error) {
	if len(candidates) == 0 {
		return nil, errs.ErrResourceNotAvailable
	}
	from, to := schedule.DayBounds(start, s.loc)

	var best *resource.Resource
	bestCount := 0
	for _, c := range candidates {
		entries, err := s.reads.ActiveBookings(ctx, s.kind, c.ID(), from, to)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrPersistenceFailure)
		}
		count := calendar.New(c.ID(), entries).CountOn(start, s.loc, exclude)
		if best == nil || count < bestCount {
			best, bestCount = c, count
		}
	}
	return best, nil
}
