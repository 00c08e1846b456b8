package schedule

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// DefaultTickInterval is how often the monitor re-resolves when no mutation
// event arrives first.
const DefaultTickInterval = 30 * time.Second

// Monitor owns the periodic resolution loop. On every tick it re-resolves the
// schedule set, swaps the shared cache, and notifies the sink on transitions:
// a winner change emits exactly one content_changed event, an out-of-band
// edit bumps per-schedule watermarks and emits one schedules_edited event.
// Two consecutive ticks with nothing changed emit nothing.
type Monitor struct {
	repo     Repository
	resolver *Resolver
	cache    *ResultCache
	sink     NotificationSink
	clock    Clock
	interval time.Duration
	logger   zerolog.Logger

	// tickMu serializes ticks; a tick arriving while one is in flight is
	// skipped rather than queued.
	tickMu sync.Mutex

	mu           sync.Mutex
	lastWinnerID *int
	watermarks   map[int]time.Time
	seeded       bool

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewMonitor(repo Repository, resolver *Resolver, cache *ResultCache, sink NotificationSink, clock Clock, interval time.Duration, logger zerolog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Monitor{
		repo:       repo,
		resolver:   resolver,
		cache:      cache,
		sink:       sink,
		clock:      clock,
		interval:   interval,
		logger:     logger,
		watermarks: make(map[int]time.Time),
		stopCh:     make(chan struct{}),
	}
}

// Start runs the tick loop in a goroutine, ticking once immediately.
func (m *Monitor) Start() {
	m.logger.Info().Dur("interval", m.interval).Msg("schedule monitor starting")
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.Tick()
		for {
			select {
			case <-m.stopCh:
				return
			case <-ticker.C:
				m.Tick()
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight tick to finish.
func (m *Monitor) Stop() {
	close(m.stopCh)
	m.wg.Wait()
	m.logger.Info().Msg("schedule monitor stopped")
}

// Tick runs one evaluation cycle. Callable directly for mutation-triggered
// re-resolution; concurrent calls past the first are dropped.
func (m *Monitor) Tick() {
	if !m.tickMu.TryLock() {
		return
	}
	defer m.tickMu.Unlock()

	schedules, err := m.repo.ListActiveWithApprovedContent()
	if err != nil {
		// stale-but-available: keep the previous cached result, emit nothing
		m.logger.Error().Err(err).Msg("schedule fetch failed, keeping previous result")
		return
	}

	result := m.resolver.ResolveActive(schedules, m.clock.Now())
	m.cache.Put(result)

	m.mu.Lock()
	winnerChanged := !sameWinnerID(m.lastWinnerID, result.WinnerScheduleID)
	if winnerChanged {
		m.lastWinnerID = copyID(result.WinnerScheduleID)
	}
	edited := m.bumpWatermarks(schedules)
	m.mu.Unlock()

	if winnerChanged {
		m.sink.Publish(Event{
			Type:      EventContentChanged,
			Content:   result.Content,
			EmittedAt: m.clock.Now(),
		})
		m.logger.Info().
			Interface("winner_schedule_id", result.WinnerScheduleID).
			Msg("active content changed")
	}
	if edited > 0 {
		m.sink.Publish(Event{
			Type:        EventSchedulesEdited,
			EditedCount: edited,
			EmittedAt:   m.clock.Now(),
		})
	}
}

// bumpWatermarks records last-modified timestamps and counts schedules edited
// since the previous tick. The first tick seeds the map silently so boot does
// not announce every existing schedule as an edit. Caller holds m.mu.
func (m *Monitor) bumpWatermarks(schedules []model.Schedule) int {
	edited := 0
	for _, s := range schedules {
		ts, err := m.repo.LastModified(s.ID)
		if err != nil {
			m.logger.Warn().Err(err).Int("schedule_id", s.ID).Msg("watermark lookup failed")
			continue
		}
		prev, known := m.watermarks[s.ID]
		if !known || ts.After(prev) {
			if m.seeded {
				edited++
			}
			m.watermarks[s.ID] = ts
		}
	}
	m.seeded = true
	return edited
}

func sameWinnerID(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
