package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be between 00:00 and 24:00")
	ErrInvalidWindow    = errors.New("window start must be before end")
)

const (
	MinutesPerDay = 24 * 60
	DateLayout    = "2006-01-02"
)

// TimeOfDay counts minutes since local midnight; 24:00 is allowed as an end bound.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	m := hour*60 + minute
	if m > MinutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(m), nil
}

// ParseTimeOfDay accepts "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(h, m)
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

type Window struct {
	Start     TimeOfDay
	End       TimeOfDay
	Available bool
}

// NewWindow validates bounds only for available windows; an unavailable
// window simply closes the day.
func NewWindow(start, end TimeOfDay, available bool) (Window, error) {
	if start < 0 || end > MinutesPerDay {
		return Window{}, ErrInvalidTimeOfDay
	}
	if available && start >= end {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end, Available: available}, nil
}

func Closed() Window {
	return Window{}
}

// instants places the window on day's local date in loc. Wall-clock
// construction keeps DST days right; 24:00 normalizes to the next midnight.
func (w Window) instants(day time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.In(loc).Date()
	at := func(t TimeOfDay) time.Time {
		return time.Date(y, m, d, t.Minutes()/60, t.Minutes()%60, 0, 0, loc)
	}
	return at(w.Start), at(w.End)
}

// DateKey formats the calendar date of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// DayBounds returns the instants of local midnight starting t's date and the next one.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
