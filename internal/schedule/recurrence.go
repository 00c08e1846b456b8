package schedule

import (
	"time"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// MatchesToday reports whether the schedule recurs on now's calendar date.
// now must already be converted to the schedule's timezone.
//
// Weekly schedules are gated by weekday membership only and recur
// indefinitely; the stored date range does not apply to them. Monthly
// schedules pin the day-of-month of the start date with no end gate. This
// asymmetry is a product decision, not an oversight; see DESIGN.md.
func MatchesToday(nowInZone time.Time, s model.Schedule) bool {
	switch s.Recurrence {
	case model.RecurrenceNone, model.RecurrenceDaily:
		// both require today to lie inside [start_date, end_date]; the daily
		// slice itself is WithinWindow's job
		today := civilDate(nowInZone)
		return !today.before(civilDateOf(s.StartDate)) && !today.after(civilDateOf(s.EndDate))
	case model.RecurrenceWeekly:
		weekday := int(nowInZone.Weekday())
		for _, d := range s.Weekdays {
			if d == weekday {
				return true
			}
		}
		return false
	case model.RecurrenceMonthly:
		return nowInZone.Day() == civilDateOf(s.StartDate).day
	}
	return false
}

// date is a timezone-free calendar date.
type date struct {
	year  int
	month time.Month
	day   int
}

func civilDate(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

// civilDateOf reads a stored calendar date without converting zones; date
// columns come back from the driver as midnight UTC and must stay the date
// the administrator typed.
func civilDateOf(t time.Time) date {
	y, m, d := t.UTC().Date()
	return date{year: y, month: m, day: d}
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}
