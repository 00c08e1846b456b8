package schedule

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// Repository supplies schedule snapshots for evaluation. Implemented by the
// Postgres store; content lists come back already filtered to approved items,
// with missing or unapproved references silently omitted.
type Repository interface {
	ListActiveWithApprovedContent() ([]model.Schedule, error)
	LastModified(scheduleID int) (time.Time, error)
}

// Resolver decides which schedule (if any) should be on screen at a given
// instant. It is stateless: the same snapshot and the same now always
// produce the same result.
type Resolver struct {
	logger zerolog.Logger
}

func NewResolver(logger zerolog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// ResolveActive filters schedules to those eligible at now and picks the
// winner by priority, breaking ties by most recent creation. A malformed
// schedule (bad timezone, corrupt time string) is skipped with a warning and
// never aborts the pass.
func (r *Resolver) ResolveActive(schedules []model.Schedule, now time.Time) model.ResolutionResult {
	var winner *model.Schedule
	var winnerItems []model.ScheduleItem

	for i := range schedules {
		s := &schedules[i]
		if !s.IsActive {
			continue
		}

		local, err := NowInZone(now, s.Timezone)
		if err != nil {
			r.logger.Warn().Err(err).Int("schedule_id", s.ID).Msg("skipping schedule with unparseable timezone")
			continue
		}
		if !MatchesToday(local, *s) {
			continue
		}

		start, err := model.ParseTimeOfDay(s.StartTime)
		if err != nil {
			r.logger.Warn().Err(err).Int("schedule_id", s.ID).Msg("skipping schedule with corrupt start time")
			continue
		}
		end, err := model.ParseTimeOfDay(s.EndTime)
		if err != nil {
			r.logger.Warn().Err(err).Int("schedule_id", s.ID).Msg("skipping schedule with corrupt end time")
			continue
		}
		if !WithinWindow(local, start, end) {
			continue
		}

		items := eligibleItems(s.Items)
		if len(items) == 0 {
			continue
		}

		if winner == nil || beats(*s, *winner) {
			winner = s
			winnerItems = items
		}
	}

	result := model.ResolutionResult{ComputedAt: now}
	if winner == nil {
		return result
	}

	first := winnerItems[0]
	id := winner.ID
	result.WinnerScheduleID = &id
	result.Content = &model.ContentPayload{
		ScheduleID:      winner.ID,
		ContentID:       first.ContentID,
		Name:            first.Name,
		Type:            first.Type,
		URL:             first.URL,
		DurationSeconds: itemDuration(first),
	}
	return result
}

// beats reports whether a should win over b. Higher priority wins; equal
// priorities go to the most recently created schedule so repeated passes
// over unchanged input never flicker between winners.
func beats(a, b model.Schedule) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// eligibleItems drops unapproved entries and orders the rest for playback.
// The store already filters, but snapshots handed in by tests or future
// callers may not be pre-screened.
func eligibleItems(items []model.ScheduleItem) []model.ScheduleItem {
	out := make([]model.ScheduleItem, 0, len(items))
	for _, it := range items {
		if it.Approved {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func itemDuration(it model.ScheduleItem) int {
	if it.CustomDuration != nil && *it.CustomDuration > 0 {
		return *it.CustomDuration
	}
	return it.DurationSeconds
}
