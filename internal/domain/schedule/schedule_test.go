//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"booking-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2030-01-07 is a Monday.
func at(hour, minute int) time.Time {
	return time.Date(2030, 1, 7, hour, minute, 0, 0, time.UTC)
}

func mustWindow(t *testing.T, start, end string, available bool) schedule.Window {
	t.Helper()
	s, err := schedule.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := schedule.ParseTimeOfDay(end)
	require.NoError(t, err)
	w, err := schedule.NewWindow(s, e, available)
	require.NoError(t, err)
	return w
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "00:00", want: 0},
		{in: "24:00", want: 1440},
		{in: "17:30", want: 1050},
		{in: "24:01", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestNewWindow(t *testing.T) {
	_, err := schedule.NewWindow(600, 540, true)
	assert.ErrorIs(t, err, schedule.ErrInvalidWindow)

	w, err := schedule.NewWindow(0, 0, false)
	require.NoError(t, err)
	assert.False(t, w.Available)
}

func TestSchedule_Covers_WorkingHoursBoundary(t *testing.T) {
	s := schedule.New(uuid.New())
	s.SetWeekly(time.Monday, mustWindow(t, "09:00", "17:00", true))

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "starts exactly at opening", start: at(9, 0), end: at(10, 0), want: true},
		{name: "ends exactly at closing", start: at(16, 0), end: at(17, 0), want: true},
		{name: "whole day", start: at(9, 0), end: at(17, 0), want: true},
		{name: "one minute before opening", start: at(8, 59), end: at(10, 0), want: false},
		{name: "one minute after closing", start: at(16, 0), end: at(17, 1), want: false},
		{name: "half a second after closing", start: at(16, 0), end: at(17, 0).Add(500 * time.Millisecond), want: false},
		{name: "half a second before opening", start: at(9, 0).Add(-500 * time.Millisecond), end: at(10, 0), want: false},
		{name: "outside entirely", start: at(18, 0), end: at(19, 0), want: false},
		{name: "crosses midnight", start: at(16, 0), end: at(16, 0).Add(12 * time.Hour), want: false},
		{name: "no weekly entry on tuesday", start: at(10, 0).AddDate(0, 0, 1), end: at(11, 0).AddDate(0, 0, 1), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Covers(tt.start, tt.end, time.UTC))
		})
	}
}

func TestSchedule_OverrideTakesPrecedence(t *testing.T) {
	s := schedule.New(uuid.New())
	s.SetWeekly(time.Monday, mustWindow(t, "09:00", "17:00", true))

	t.Run("vacation day closes the weekly window", func(t *testing.T) {
		require.NoError(t, s.SetOverride("2030-01-07", schedule.Closed()))
		assert.False(t, s.Covers(at(10, 0), at(11, 0), time.UTC))

		// the following monday still uses the weekly entry
		next := 7 * 24 * time.Hour
		assert.True(t, s.Covers(at(10, 0).Add(next), at(11, 0).Add(next), time.UTC))
	})

	t.Run("extended hours", func(t *testing.T) {
		require.NoError(t, s.SetOverride("2030-01-07", mustWindow(t, "07:00", "20:00", true)))
		assert.True(t, s.Covers(at(7, 0), at(8, 0), time.UTC))
		assert.True(t, s.Covers(at(19, 0), at(20, 0), time.UTC))
	})

	t.Run("override on a day without weekly entry", func(t *testing.T) {
		require.NoError(t, s.SetOverride("2030-01-12", mustWindow(t, "10:00", "14:00", true)))
		sat := time.Date(2030, 1, 12, 10, 0, 0, 0, time.UTC)
		assert.True(t, s.Covers(sat, sat.Add(time.Hour), time.UTC))
	})

	t.Run("bad date key", func(t *testing.T) {
		assert.Error(t, s.SetOverride("07/01/2030", schedule.Closed()))
	})
}

func TestSchedule_Covers_UsesScheduleTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	s := schedule.New(uuid.New())
	s.SetWeekly(time.Monday, mustWindow(t, "09:00", "17:00", true))

	// 2030-01-07 00:00 UTC is Monday 09:00 in Tokyo.
	start := time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, s.Covers(start, start.Add(time.Hour), tokyo))
	assert.False(t, s.Covers(start, start.Add(time.Hour), time.UTC))
}

func TestSchedule_Covers_EndAtMidnight(t *testing.T) {
	s := schedule.New(uuid.New())
	s.SetWeekly(time.Monday, mustWindow(t, "20:00", "24:00", true))

	assert.True(t, s.Covers(at(23, 0), at(0, 0).AddDate(0, 0, 1), time.UTC))
}

func TestSchedule_NilIsClosed(t *testing.T) {
	var s *schedule.Schedule
	assert.False(t, s.Covers(at(10, 0), at(11, 0), time.UTC))
}
