package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

func newTestMonitor(repo *fakeRepo, clock Clock, sink NotificationSink) *Monitor {
	cache := NewResultCache(DefaultResultTTL, clock)
	return NewMonitor(repo, NewResolver(zerolog.Nop()), cache, sink, clock, time.Minute, zerolog.Nop())
}

func TestMonitorFirstTickAnnouncesWinnerOnly(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	repo.touch(1, clock.Now().Add(-time.Hour))
	sink := &recordingSink{}
	m := newTestMonitor(repo, clock, sink)

	m.Tick()

	events := sink.Events()
	require.Len(t, events, 1)
	require.Equal(t, EventContentChanged, events[0].Type)
	require.NotNil(t, events[0].Content)
	require.Equal(t, 1, events[0].Content.ScheduleID)
}

func TestMonitorUnchangedTicksEmitNothing(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	sink := &recordingSink{}
	m := newTestMonitor(repo, clock, sink)

	m.Tick()
	baseline := len(sink.Events())

	clock.Advance(time.Minute)
	m.Tick()
	clock.Advance(time.Minute)
	m.Tick()

	require.Len(t, sink.Events(), baseline)
}

func TestMonitorWinnerFlipEmitsExactlyOnce(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 11, 30, 0, 0, time.UTC))
	low := testSchedule(1, 5, "UTC", "09:00", "18:00")
	high := testSchedule(2, 8, "UTC", "12:00", "14:00")
	repo := newFakeRepo(low, high)
	sink := &recordingSink{}
	m := newTestMonitor(repo, clock, sink)

	m.Tick() // 11:30, schedule 1 wins
	events := sink.Events()
	require.Len(t, events, 1)
	require.Equal(t, 1, events[0].Content.ScheduleID)

	clock.Advance(45 * time.Minute) // 12:15, schedule 2 takes over
	m.Tick()
	events = sink.Events()
	require.Len(t, events, 2)
	require.Equal(t, EventContentChanged, events[1].Type)
	require.Equal(t, 2, events[1].Content.ScheduleID)

	clock.Advance(time.Minute) // still schedule 2
	m.Tick()
	require.Len(t, sink.Events(), 2)
}

func TestMonitorWinnerDisappears(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 17, 59, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	sink := &recordingSink{}
	m := newTestMonitor(repo, clock, sink)

	m.Tick()
	require.Len(t, sink.Events(), 1)

	clock.Advance(2 * time.Minute) // window closed, nothing active
	m.Tick()

	events := sink.Events()
	require.Len(t, events, 2)
	require.Equal(t, EventContentChanged, events[1].Type)
	require.Nil(t, events[1].Content)
}

func TestMonitorDetectsScheduleEdits(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	repo.touch(1, clock.Now().Add(-time.Hour))
	sink := &recordingSink{}
	m := newTestMonitor(repo, clock, sink)

	m.Tick() // seeds watermarks, announces the first winner
	baseline := len(sink.Events())

	repo.touch(1, clock.Now().Add(time.Second))
	clock.Advance(time.Minute)
	m.Tick()

	events := sink.Events()
	require.Len(t, events, baseline+1)
	edited := events[len(events)-1]
	require.Equal(t, EventSchedulesEdited, edited.Type)
	require.Equal(t, 1, edited.EditedCount)

	// no further edits, no further events
	clock.Advance(time.Minute)
	m.Tick()
	require.Len(t, sink.Events(), baseline+1)
}

func TestMonitorRepoFailureKeepsStaleResult(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	sink := &recordingSink{}
	cache := NewResultCache(DefaultResultTTL, clock)
	m := NewMonitor(repo, NewResolver(zerolog.Nop()), cache, sink, clock, time.Minute, zerolog.Nop())

	m.Tick()
	baseline := len(sink.Events())
	before := cache.Last()
	require.NotNil(t, before)

	repo.setErr(errors.New("connection refused"))
	clock.Advance(time.Minute)
	m.Tick()

	// previous result survives and no events fire
	require.Len(t, sink.Events(), baseline)
	after := cache.Last()
	require.NotNil(t, after)
	require.True(t, before.SameWinner(*after))

	// recovery resumes normally without a spurious transition
	repo.setErr(nil)
	clock.Advance(time.Minute)
	m.Tick()
	require.Len(t, sink.Events(), baseline)
}

func TestMonitorNewScheduleAfterSeedCountsAsEdit(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	first := testSchedule(1, 5, "UTC", "09:00", "18:00")
	repo := newFakeRepo(first)
	repo.touch(1, clock.Now().Add(-time.Hour))
	sink := &recordingSink{}
	m := newTestMonitor(repo, clock, sink)

	m.Tick()
	baseline := len(sink.Events())

	second := testSchedule(2, 9, "UTC", "09:00", "18:00")
	repo.setSchedules(first, second)
	repo.touch(2, clock.Now())
	clock.Advance(time.Minute)
	m.Tick()

	// the new schedule both wins and counts as an edit
	events := sink.Events()
	require.Len(t, events, baseline+2)

	var sawContent, sawEdited bool
	for _, e := range events[baseline:] {
		switch e.Type {
		case EventContentChanged:
			sawContent = true
			require.Equal(t, 2, e.Content.ScheduleID)
		case EventSchedulesEdited:
			sawEdited = true
			require.Equal(t, 1, e.EditedCount)
		}
	}
	require.True(t, sawContent)
	require.True(t, sawEdited)
}

func TestMonitorStartStop(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	sink := &recordingSink{}
	m := newTestMonitor(repo, clock, sink)

	m.Start()
	require.Eventually(t, func() bool {
		return len(sink.Events()) >= 1
	}, time.Second, 10*time.Millisecond)
	m.Stop()

	// engine result is in the shared cache after the immediate tick
	require.NotNil(t, m.cache.Last())
}

func TestEngineServesStaleOnFetchFailure(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	cache := NewResultCache(DefaultResultTTL, clock)
	engine := NewEngine(repo, NewResolver(zerolog.Nop()), cache, clock, zerolog.Nop())

	payload := engine.ResolveCurrentContent()
	require.NotNil(t, payload)
	require.Equal(t, 1, payload.ScheduleID)

	// cache expires, repo goes down: last known answer is still served
	clock.Advance(time.Hour)
	repo.setErr(errors.New("connection refused"))
	payload = engine.ResolveCurrentContent()
	require.NotNil(t, payload)
	require.Equal(t, 1, payload.ScheduleID)
}

func TestEngineFreshCacheSkipsRepo(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	cache := NewResultCache(DefaultResultTTL, clock)
	engine := NewEngine(repo, NewResolver(zerolog.Nop()), cache, clock, zerolog.Nop())

	engine.ResolveCurrentContent()
	repo.mu.Lock()
	calls := repo.calls
	repo.mu.Unlock()

	engine.ResolveCurrentContent()
	repo.mu.Lock()
	require.Equal(t, calls, repo.calls)
	repo.mu.Unlock()
}

func TestEngineNothingActive(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 3, 0, 0, 0, time.UTC))
	repo := newFakeRepo(testSchedule(1, 5, "UTC", "09:00", "18:00"))
	cache := NewResultCache(DefaultResultTTL, clock)
	engine := NewEngine(repo, NewResolver(zerolog.Nop()), cache, clock, zerolog.Nop())

	require.Nil(t, engine.ResolveCurrentContent())

	var empty model.ResolutionResult
	last := cache.Last()
	require.NotNil(t, last)
	require.True(t, empty.SameWinner(*last))
}
