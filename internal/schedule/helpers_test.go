package schedule

import (
	"sync"
	"time"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// fakeClock pins "now" so resolution is deterministic.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakeRepo serves a canned snapshot and per-schedule modification times.
type fakeRepo struct {
	mu        sync.Mutex
	schedules []model.Schedule
	modified  map[int]time.Time
	err       error
	calls     int
}

func newFakeRepo(schedules ...model.Schedule) *fakeRepo {
	return &fakeRepo{schedules: schedules, modified: make(map[int]time.Time)}
}

func (r *fakeRepo) ListActiveWithApprovedContent() ([]model.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]model.Schedule, len(r.schedules))
	copy(out, r.schedules)
	return out, nil
}

func (r *fakeRepo) LastModified(scheduleID int) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modified[scheduleID], nil
}

func (r *fakeRepo) setSchedules(schedules ...model.Schedule) {
	r.mu.Lock()
	r.schedules = schedules
	r.mu.Unlock()
}

func (r *fakeRepo) setErr(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *fakeRepo) touch(scheduleID int, ts time.Time) {
	r.mu.Lock()
	r.modified[scheduleID] = ts
	r.mu.Unlock()
}

// recordingSink captures published events in order.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Publish(event Event) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
}

func (s *recordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func approvedItem(contentID, position, duration int) model.ScheduleItem {
	return model.ScheduleItem{
		ContentID:       contentID,
		Position:        position,
		Name:            "item",
		Type:            "image",
		URL:             "https://cdn.example.com/item.png",
		DurationSeconds: duration,
		Approved:        true,
	}
}

func testSchedule(id int, priority int, tz, startTime, endTime string) model.Schedule {
	return model.Schedule{
		ID:         id,
		Name:       "schedule",
		StartDate:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		StartTime:  startTime,
		EndTime:    endTime,
		Timezone:   tz,
		Recurrence: model.RecurrenceDaily,
		IsActive:   true,
		Priority:   priority,
		CreatedBy:  1,
		CreatedAt:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		Items:      []model.ScheduleItem{approvedItem(100 + id, 0, 30)},
	}
}
