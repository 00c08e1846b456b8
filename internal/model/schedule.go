package model

import (
	"fmt"
	"time"
)

// RecurrenceType enumerates how a schedule repeats within its date range.
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// ValidRecurrence reports whether t is one of the supported recurrence kinds.
func ValidRecurrence(t RecurrenceType) bool {
	switch t {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// TimeOfDay is a wall-clock time without a date ("HH:MM").
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (also accepts "HH:MM:SS", seconds ignored).
// The whole string must be a valid clock time; trailing garbage is rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("malformed time of day %q", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinuteOfDay returns minutes since midnight, used for window ordering.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// ScheduleItem is one entry in a schedule's ordered content list, carrying a
// snapshot of the referenced content so resolution never re-fetches.
type ScheduleItem struct {
	ContentID       int    `db:"content_id" json:"content_id"`
	Position        int    `db:"position" json:"position"`
	CustomDuration  *int   `db:"custom_duration" json:"custom_duration"`
	Name            string `db:"name" json:"name"`
	Type            string `db:"type" json:"type"`
	URL             string `db:"url" json:"url"`
	DurationSeconds int    `db:"duration_seconds" json:"duration_seconds"`
	Approved        bool   `db:"approved" json:"approved"`
}

// Schedule is an immutable snapshot of one content assignment. Resolution
// logic lives in internal/schedule and only reads these values.
type Schedule struct {
	ID          int            `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Description *string        `db:"description" json:"description"`
	StartDate   time.Time      `db:"start_date" json:"start_date"`
	EndDate     time.Time      `db:"end_date" json:"end_date"`
	StartTime   string         `db:"start_time" json:"start_time"`
	EndTime     string         `db:"end_time" json:"end_time"`
	Timezone    string         `db:"timezone" json:"timezone"`
	Recurrence  RecurrenceType `db:"recurrence" json:"recurrence"`
	Weekdays    []int          `json:"weekdays"`
	IsActive    bool           `db:"is_active" json:"is_active"`
	Priority    int            `db:"priority" json:"priority"`
	CreatedBy   int            `db:"created_by" json:"created_by"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`

	Items     []ScheduleItem `json:"items"`
	ScreenIDs []int          `json:"screen_ids"`
}
