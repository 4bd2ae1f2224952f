package calendar

import (
	"time"

	"github.com/google/uuid"
)

// BufferPolicy is the turnover time appended after every booking. It never
// extends a booking's start.
type BufferPolicy struct {
	duration time.Duration
}

func NewBufferPolicy(d time.Duration) BufferPolicy {
	if d < 0 {
		d = 0
	}
	return BufferPolicy{duration: d}
}

func BufferMinutes(minutes int) BufferPolicy {
	return NewBufferPolicy(time.Duration(minutes) * time.Minute)
}

func (p BufferPolicy) Duration() time.Duration {
	return p.duration
}

type ConflictDetector struct {
	buffer BufferPolicy
}

func NewConflictDetector(buffer BufferPolicy) *ConflictDetector {
	return &ConflictDetector{buffer: buffer}
}

func (d *ConflictDetector) Buffer() BufferPolicy {
	return d.buffer
}

// Horizon is the smallest range of booking starts/ends a calendar must cover
// to answer HasConflict for [start, end).
func (d *ConflictDetector) Horizon(start, end time.Time) (time.Time, time.Time) {
	return start.Add(-d.buffer.duration), end
}

// HasConflict reports whether an active booking other than exclude overlaps
// [start, end) once the buffer is added to its end.
func (d *ConflictDetector) HasConflict(cal *Calendar, start, end time.Time, exclude *uuid.UUID) bool {
	return len(d.Conflicts(cal, start, end, exclude)) > 0
}

func (d *ConflictDetector) Conflicts(cal *Calendar, start, end time.Time, exclude *uuid.UUID) []Entry {
	if cal == nil {
		return nil
	}
	var out []Entry
	for _, e := range cal.entries {
		if !e.IsActive() || isExcluded(e, exclude) {
			continue
		}
		effectiveEnd := e.End.Add(d.buffer.duration)
		if start.Before(effectiveEnd) && end.After(e.Start) {
			out = append(out, e)
		}
	}
	return out
}
