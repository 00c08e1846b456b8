package schedule

import (
	"time"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// WithinWindow reports whether now falls inside the daily time-of-day window
// [start, end], inclusive on both ends. The window is anchored to now's
// calendar date in now's location; the schedule's stored date range is a
// separate gate handled by MatchesToday and must never leak in here.
//
// end <= start is an overnight window spanning midnight: 22:00-02:00 covers
// tonight 22:00 through tomorrow 02:00, and at 01:30 we are inside the span
// that opened yesterday evening.
func WithinWindow(nowInZone time.Time, start, end model.TimeOfDay) bool {
	year, month, day := nowInZone.Date()
	loc := nowInZone.Location()

	opens := time.Date(year, month, day, start.Hour, start.Minute, 0, 0, loc)
	closes := time.Date(year, month, day, end.Hour, end.Minute, 0, 0, loc)

	if end.MinuteOfDay() <= start.MinuteOfDay() {
		closes = closes.AddDate(0, 0, 1)
		if nowInZone.Before(opens) {
			// early morning: check against the window that opened yesterday
			opens = opens.AddDate(0, 0, -1)
			closes = closes.AddDate(0, 0, -1)
		}
	}

	return !nowInZone.Before(opens) && !nowInZone.After(closes)
}
