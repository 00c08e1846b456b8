package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func tod(hour, minute int) model.TimeOfDay {
	return model.TimeOfDay{Hour: hour, Minute: minute}
}

func TestWithinWindowSameDay(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before opening", at(8, 59), false},
		{"at opening", at(9, 0), true},
		{"mid window", at(12, 30), true},
		{"at closing", at(17, 0), true},
		{"after closing", at(17, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WithinWindow(tc.now, tod(9, 0), tod(17, 0)))
		})
	}
}

func TestWithinWindowOvernight(t *testing.T) {
	// 22:00-02:00 spans midnight
	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"evening before open", at(21, 59), false},
		{"just opened", at(22, 0), true},
		{"late evening", at(23, 30), true},
		{"past midnight", at(1, 30), true},
		{"at close", at(2, 0), true},
		{"early morning after close", at(3, 0), false},
		{"midday", at(12, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WithinWindow(tc.now, tod(22, 0), tod(2, 0)))
		})
	}
}

func TestWithinWindowEqualBoundsWrapsFullDay(t *testing.T) {
	// start == end is treated as a wrap, covering the whole day
	require.True(t, WithinWindow(at(0, 0), tod(10, 0), tod(10, 0)))
	require.True(t, WithinWindow(at(10, 0), tod(10, 0), tod(10, 0)))
	require.True(t, WithinWindow(at(23, 59), tod(10, 0), tod(10, 0)))
}

func TestWithinWindowUsesLocalDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 12:30 IST inside a 09:00-18:00 window
	now := time.Date(2026, time.March, 10, 12, 30, 0, 0, loc)
	require.True(t, WithinWindow(now, tod(9, 0), tod(18, 0)))

	// same wall-clock instant expressed in UTC is 07:00, outside the window,
	// which is exactly why callers must convert first
	require.False(t, WithinWindow(now.UTC(), tod(9, 0), tod(18, 0)))
}
