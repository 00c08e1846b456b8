package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: TimeOfDay{Hour: 9}},
		{in: "9:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{in: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{in: "00:00", want: TimeOfDay{}},
		{in: "14:30:45", want: TimeOfDay{Hour: 14, Minute: 30}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "9:5", wantErr: true},
		{in: "9am", wantErr: true},
		{in: "", wantErr: true},
		{in: "noon", wantErr: true},
		// the whole string must be consumed
		{in: "12:30xyz", wantErr: true},
		{in: "1:2:", wantErr: true},
		{in: "09:00 extra", wantErr: true},
		{in: "09:00:00:00", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	require.Equal(t, "09:05", TimeOfDay{Hour: 9, Minute: 5}.String())
	require.Equal(t, "00:00", TimeOfDay{}.String())
}

func TestMinuteOfDay(t *testing.T) {
	require.Equal(t, 0, TimeOfDay{}.MinuteOfDay())
	require.Equal(t, 570, TimeOfDay{Hour: 9, Minute: 30}.MinuteOfDay())
	require.Equal(t, 1439, TimeOfDay{Hour: 23, Minute: 59}.MinuteOfDay())
}

func TestValidRecurrence(t *testing.T) {
	for _, r := range []RecurrenceType{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly} {
		require.True(t, ValidRecurrence(r))
	}
	require.False(t, ValidRecurrence(RecurrenceType("hourly")))
	require.False(t, ValidRecurrence(RecurrenceType("")))
}
