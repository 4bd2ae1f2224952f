package availability

import (
	"context"
	"time"

	"booking-scheduler/internal/domain/calendar"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

// Reads is the storage view the resolvers need. Inside a write transaction it
// must observe the caller's own locks; for queries any read-committed view works.
//
// ResourceByID and ScheduleFor return an infra.KindNotFound error when absent.
type Reads interface {
	ResourceByID(ctx context.Context, kind resource.Kind, id uuid.UUID) (*resource.Resource, error)
	EligibleResources(ctx context.Context, kind resource.Kind, serviceID uuid.UUID) ([]*resource.Resource, error)
	ScheduleFor(ctx context.Context, resourceID uuid.UUID) (*schedule.Schedule, error)
	// ActiveBookings returns active bookings on the resource with end > from and start < to.
	ActiveBookings(ctx context.Context, kind resource.Kind, resourceID uuid.UUID, from, to time.Time) ([]calendar.Entry, error)
}
