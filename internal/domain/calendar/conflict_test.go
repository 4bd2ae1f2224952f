//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2030, 1, 7, hour, minute, 0, 0, time.UTC)
}

func entry(id uuid.UUID, start, end time.Time, status booking.Status) calendar.Entry {
	return calendar.Entry{BookingID: id, Start: start, End: end, Status: status}
}

func TestConflictDetector_BufferAsymmetry(t *testing.T) {
	existing := uuid.New()
	cal := calendar.New(uuid.New(), []calendar.Entry{
		entry(existing, at(10, 0), at(11, 0), booking.StatusConfirmed),
	})
	detector := calendar.NewConflictDetector(calendar.BufferMinutes(15))

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "starts at end", start: at(11, 0), end: at(12, 0), want: true},
		{name: "starts inside buffer", start: at(11, 14), end: at(12, 0), want: true},
		{name: "starts at end plus buffer", start: at(11, 15), end: at(12, 15), want: false},
		{name: "ends exactly at start", start: at(9, 0), end: at(10, 0), want: false},
		{name: "ends one minute into booking", start: at(9, 0), end: at(10, 1), want: true},
		{name: "ends before start with buffer-sized gap", start: at(9, 30), end: at(9, 50), want: false},
		{name: "contained", start: at(10, 15), end: at(10, 45), want: true},
		{name: "containing", start: at(9, 0), end: at(12, 0), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.HasConflict(cal, tt.start, tt.end, nil))
		})
	}
}

func TestConflictDetector_ZeroBuffer(t *testing.T) {
	cal := calendar.New(uuid.New(), []calendar.Entry{
		entry(uuid.New(), at(10, 0), at(11, 0), booking.StatusConfirmed),
	})
	detector := calendar.NewConflictDetector(calendar.BufferMinutes(0))

	assert.False(t, detector.HasConflict(cal, at(11, 0), at(12, 0), nil))
	assert.True(t, detector.HasConflict(cal, at(10, 59), at(12, 0), nil))
}

func TestConflictDetector_InactiveBookingsNeverBlock(t *testing.T) {
	detector := calendar.NewConflictDetector(calendar.BufferMinutes(15))

	for _, status := range []booking.Status{booking.StatusCancelled, booking.StatusNoShow} {
		t.Run(status.String(), func(t *testing.T) {
			cal := calendar.New(uuid.New(), []calendar.Entry{
				entry(uuid.New(), at(10, 0), at(11, 0), status),
			})
			assert.False(t, detector.HasConflict(cal, at(10, 0), at(11, 0), nil))
		})
	}

	for _, status := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCompleted} {
		t.Run(status.String(), func(t *testing.T) {
			cal := calendar.New(uuid.New(), []calendar.Entry{
				entry(uuid.New(), at(10, 0), at(11, 0), status),
			})
			assert.True(t, detector.HasConflict(cal, at(10, 0), at(11, 0), nil))
		})
	}
}

func TestConflictDetector_ExcludesOwnBooking(t *testing.T) {
	self := uuid.New()
	other := uuid.New()
	cal := calendar.New(uuid.New(), []calendar.Entry{
		entry(self, at(10, 0), at(11, 0), booking.StatusConfirmed),
		entry(other, at(13, 0), at(14, 0), booking.StatusConfirmed),
	})
	detector := calendar.NewConflictDetector(calendar.BufferMinutes(15))

	assert.False(t, detector.HasConflict(cal, at(10, 30), at(11, 30), &self))
	assert.True(t, detector.HasConflict(cal, at(12, 30), at(13, 30), &self))

	conflicts := detector.Conflicts(cal, at(10, 30), at(13, 30), nil)
	assert.Len(t, conflicts, 2)
}

func TestConflictDetector_Horizon(t *testing.T) {
	detector := calendar.NewConflictDetector(calendar.BufferMinutes(15))
	from, to := detector.Horizon(at(10, 0), at(11, 0))
	assert.Equal(t, at(9, 45), from)
	assert.Equal(t, at(11, 0), to)
}

func TestNewBufferPolicy_ClampsNegative(t *testing.T) {
	assert.Equal(t, time.Duration(0), calendar.NewBufferPolicy(-time.Minute).Duration())
}

func TestCalendar_CountOn(t *testing.T) {
	excluded := uuid.New()
	cal := calendar.New(uuid.New(), []calendar.Entry{
		entry(uuid.New(), at(9, 0), at(10, 0), booking.StatusConfirmed),
		entry(uuid.New(), at(11, 0), at(12, 0), booking.StatusPending),
		entry(uuid.New(), at(13, 0), at(14, 0), booking.StatusCancelled),
		entry(excluded, at(15, 0), at(16, 0), booking.StatusConfirmed),
		entry(uuid.New(), at(10, 0).AddDate(0, 0, 1), at(11, 0).AddDate(0, 0, 1), booking.StatusConfirmed),
	})

	assert.Equal(t, 3, cal.CountOn(at(12, 0), time.UTC, nil))
	assert.Equal(t, 2, cal.CountOn(at(12, 0), time.UTC, &excluded))
	assert.Equal(t, 1, cal.CountOn(at(12, 0).AddDate(0, 0, 1), time.UTC, nil))
}
