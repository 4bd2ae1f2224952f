package calendar

import (
	"sort"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

// Entry is the scheduling view of one booking on one resource.
type Entry struct {
	BookingID uuid.UUID
	Start     time.Time
	End       time.Time
	Status    booking.Status
}

func (e Entry) IsActive() bool {
	return e.Status.IsActive()
}

// Calendar holds the bookings of a single resource within some horizon.
// It is a value built per request and never shared between callers.
type Calendar struct {
	resourceID uuid.UUID
	entries    []Entry
}

func New(resourceID uuid.UUID, entries []Entry) *Calendar {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return &Calendar{resourceID: resourceID, entries: sorted}
}

func (c *Calendar) ResourceID() uuid.UUID { return c.resourceID }

// CountOn counts active entries starting on day's local date, skipping exclude.
func (c *Calendar) CountOn(day time.Time, loc *time.Location, exclude *uuid.UUID) int {
	from, to := schedule.DayBounds(day, loc)
	n := 0
	for _, e := range c.entries {
		if !e.IsActive() || isExcluded(e, exclude) {
			continue
		}
		if !e.Start.Before(from) && e.Start.Before(to) {
			n++
		}
	}
	return n
}

func isExcluded(e Entry, exclude *uuid.UUID) bool {
	return exclude != nil && e.BookingID == *exclude
}
