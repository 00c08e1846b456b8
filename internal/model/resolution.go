package model

import "time"

// ContentPayload is what a display is told to show right now.
type ContentPayload struct {
	ScheduleID      int    `json:"schedule_id"`
	ContentID       int    `json:"content_id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
}

// ResolutionResult is the outcome of one resolution pass. It is never mutated
// after construction; the cache and monitor only swap whole values.
type ResolutionResult struct {
	WinnerScheduleID *int
	Content          *ContentPayload
	ComputedAt       time.Time
}

// SameWinner reports whether two results picked the same schedule. Winner
// identity is the transition signal for change detection; content identity
// within a schedule is stable enough to ignore here.
func (r ResolutionResult) SameWinner(other ResolutionResult) bool {
	if r.WinnerScheduleID == nil || other.WinnerScheduleID == nil {
		return r.WinnerScheduleID == nil && other.WinnerScheduleID == nil
	}
	return *r.WinnerScheduleID == *other.WinnerScheduleID
}
