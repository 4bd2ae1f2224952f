package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is the working-hours definition of one resource: weekly recurring
// windows plus date overrides, which win over the weekly entry for their date.
type Schedule struct {
	resourceID uuid.UUID
	weekly     map[time.Weekday]Window
	overrides  map[string]Window
}

func New(resourceID uuid.UUID) *Schedule {
	return &Schedule{
		resourceID: resourceID,
		weekly:     make(map[time.Weekday]Window),
		overrides:  make(map[string]Window),
	}
}

func (s *Schedule) SetWeekly(day time.Weekday, w Window) {
	s.weekly[day] = w
}

// SetOverride keys the window by the civil date "2006-01-02".
func (s *Schedule) SetOverride(date string, w Window) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return err
	}
	s.overrides[date] = w
	return nil
}

// EffectiveWindow resolves the window that governs the local calendar date of at.
func (s *Schedule) EffectiveWindow(at time.Time, loc *time.Location) (Window, bool) {
	if w, ok := s.overrides[DateKey(at, loc)]; ok {
		return w, true
	}
	w, ok := s.weekly[at.In(loc).Weekday()]
	return w, ok
}

// Covers reports whether [start, end) lies within the effective window of
// start's local date. Both window bounds are inclusive and the request must not
// cross into another date, except for ending exactly at the next midnight.
func (s *Schedule) Covers(start, end time.Time, loc *time.Location) bool {
	if s == nil || !end.After(start) {
		return false
	}
	w, ok := s.EffectiveWindow(start, loc)
	if !ok || !w.Available {
		return false
	}

	opens, closes := w.instants(start, loc)
	return !start.Before(opens) && !end.After(closes)
}

func (s *Schedule) ResourceID() uuid.UUID { return s.resourceID }

func (s *Schedule) Weekly() map[time.Weekday]Window {
	out := make(map[time.Weekday]Window, len(s.weekly))
	for k, v := range s.weekly {
		out[k] = v
	}
	return out
}

func (s *Schedule) Overrides() map[string]Window {
	out := make(map[string]Window, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out
}
