package availability

import (
	"context"
	"sort"
	"time"

	"booking-scheduler/internal/domain/calendar"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// Resolver answers availability questions for one resource kind.
// Practitioners are gated by working hours and conflicts; rooms only by conflicts.
type Resolver struct {
	kind         resource.Kind
	reads        Reads
	detector     *calendar.ConflictDetector
	selector     Selector
	loc          *time.Location
	workingHours bool
}

func (r *Resolver) Kind() resource.Kind {
	return r.kind
}

// IsAvailable fails with ResourceNotFound for an unknown id.
func (r *Resolver) IsAvailable(ctx context.Context, id uuid.UUID, start, end time.Time, exclude *uuid.UUID) (bool, error) {
	res, err := r.reads.ResourceByID(ctx, r.kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Wrapf(errs.ErrResourceNotFound, "%s %s", r.kind, id)
		}
		return false, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return r.isAvailable(ctx, res, start, end, exclude)
}

func (r *Resolver) isAvailable(ctx context.Context, res *resource.Resource, start, end time.Time, exclude *uuid.UUID) (bool, error) {
	if !res.Active() || !end.After(start) {
		return false, nil
	}

	if r.workingHours {
		sched, err := r.reads.ScheduleFor(ctx, res.ID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return false, nil
			}
			return false, errs.Mark(err, errs.ErrPersistenceFailure)
		}
		if !sched.Covers(start, end, r.loc) {
			return false, nil
		}
	}

	cal, err := r.calendar(ctx, res.ID(), start, end)
	if err != nil {
		return false, err
	}
	return !r.detector.HasConflict(cal, start, end, exclude), nil
}

func (r *Resolver) calendar(ctx context.Context, id uuid.UUID, start, end time.Time) (*calendar.Calendar, error) {
	from, to := r.detector.Horizon(start, end)
	entries, err := r.reads.ActiveBookings(ctx, r.kind, id, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return calendar.New(id, entries), nil
}

// AvailableResources returns the eligible, free resources for the service in
// (display order, id) order.
func (r *Resolver) AvailableResources(ctx context.Context, serviceID uuid.UUID, start, end time.Time, exclude *uuid.UUID) ([]*resource.Resource, error) {
	eligible, err := r.Eligible(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	available := make([]*resource.Resource, 0, len(eligible))
	for _, res := range eligible {
		ok, err := r.isAvailable(ctx, res, start, end, exclude)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, res)
		}
	}
	return available, nil
}

// Eligible lists active resources of this kind that can serve the service, ordered.
func (r *Resolver) Eligible(ctx context.Context, serviceID uuid.UUID) ([]*resource.Resource, error) {
	list, err := r.reads.EligibleResources(ctx, r.kind, serviceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	active := make([]*resource.Resource, 0, len(list))
	for _, res := range list {
		if res.Active() {
			active = append(active, res)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return resource.Less(active[i], active[j]) })
	return active, nil
}

// FindBest fails with ResourceNotAvailable when nothing is free.
func (r *Resolver) FindBest(ctx context.Context, serviceID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*resource.Resource, error) {
	candidates, err := r.AvailableResources(ctx, serviceID, start, end, exclude)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errs.Wrapf(errs.ErrResourceNotAvailable, "no %s free for service %s", r.kind, serviceID)
	}
	return r.selector.Select(ctx, candidates, start, exclude)
}
