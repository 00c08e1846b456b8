package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

func dateRangeSchedule(rec model.RecurrenceType, start, end time.Time) model.Schedule {
	return model.Schedule{
		StartDate:  start,
		EndDate:    end,
		Recurrence: rec,
	}
}

func TestMatchesTodayDateRange(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	for _, rec := range []model.RecurrenceType{model.RecurrenceNone, model.RecurrenceDaily} {
		s := dateRangeSchedule(rec, start, end)

		require.False(t, MatchesToday(time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC), s))
		require.True(t, MatchesToday(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), s))
		require.True(t, MatchesToday(time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC), s))
		require.True(t, MatchesToday(time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC), s))
		require.False(t, MatchesToday(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), s))
	}
}

func TestMatchesTodayWeekly(t *testing.T) {
	s := model.Schedule{
		Recurrence: model.RecurrenceWeekly,
		Weekdays:   []int{1, 3}, // Monday, Wednesday
		// date range deliberately in the past: weekly recurs indefinitely
		StartDate: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	monday := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)

	require.True(t, MatchesToday(monday, s))
	require.False(t, MatchesToday(tuesday, s))
	require.True(t, MatchesToday(wednesday, s))
}

func TestMatchesTodayWeeklyEmptyWeekdays(t *testing.T) {
	s := model.Schedule{Recurrence: model.RecurrenceWeekly}
	require.False(t, MatchesToday(time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC), s))
}

func TestMatchesTodayMonthly(t *testing.T) {
	s := model.Schedule{
		Recurrence: model.RecurrenceMonthly,
		StartDate:  time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC),
	}

	require.True(t, MatchesToday(time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC), s))
	require.False(t, MatchesToday(time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC), s))
	// no end gate for monthly
	require.True(t, MatchesToday(time.Date(2027, time.November, 15, 9, 0, 0, 0, time.UTC), s))
}

func TestMatchesTodayMonthlyPinsStoredDate(t *testing.T) {
	// a start date carrying a non-UTC location must pin the same day-of-month
	// as its UTC calendar date, matching how none/daily read stored dates
	s := model.Schedule{
		Recurrence: model.RecurrenceMonthly,
		// 20:00 UTC-6 on the 15th is the 16th in UTC
		StartDate: time.Date(2026, time.January, 15, 20, 0, 0, 0, time.FixedZone("UTC-6", -6*3600)),
	}

	require.True(t, MatchesToday(time.Date(2026, time.March, 16, 9, 0, 0, 0, time.UTC), s))
	require.False(t, MatchesToday(time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC), s))
}

func TestMatchesTodayHonorsLocalDate(t *testing.T) {
	loc, err := time.LoadLocation("Pacific/Auckland")
	require.NoError(t, err)

	// one-day schedule on March 10th
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	s := dateRangeSchedule(model.RecurrenceNone, day, day)

	// 13:00 UTC March 9th is already March 10th in Auckland
	inAuckland := time.Date(2026, time.March, 9, 13, 0, 0, 0, time.UTC).In(loc)
	require.True(t, MatchesToday(inAuckland, s))

	// but still March 9th in UTC
	require.False(t, MatchesToday(time.Date(2026, time.March, 9, 13, 0, 0, 0, time.UTC), s))
}

func TestMatchesTodayUnknownRecurrence(t *testing.T) {
	s := model.Schedule{Recurrence: model.RecurrenceType("hourly")}
	require.False(t, MatchesToday(time.Now(), s))
}
