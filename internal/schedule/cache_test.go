package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

func TestResultCacheEmptyIsStale(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	cache := NewResultCache(5*time.Second, clock)

	result, fresh := cache.Get()
	require.Nil(t, result)
	require.False(t, fresh)
	require.Nil(t, cache.Last())
}

func TestResultCacheFreshnessWindow(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	cache := NewResultCache(5*time.Second, clock)

	id := 7
	cache.Put(model.ResolutionResult{WinnerScheduleID: &id, ComputedAt: clock.Now()})

	result, fresh := cache.Get()
	require.True(t, fresh)
	require.Equal(t, 7, *result.WinnerScheduleID)

	clock.Advance(5 * time.Second)
	_, fresh = cache.Get()
	require.True(t, fresh, "TTL boundary is inclusive")

	clock.Advance(time.Millisecond)
	result, fresh = cache.Get()
	require.False(t, fresh)
	require.NotNil(t, result, "stale entries are still returned")
	require.Equal(t, 7, *result.WinnerScheduleID)
}

func TestResultCacheLastSurvivesExpiry(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	cache := NewResultCache(time.Second, clock)

	id := 3
	cache.Put(model.ResolutionResult{WinnerScheduleID: &id, ComputedAt: clock.Now()})
	clock.Advance(time.Hour)

	last := cache.Last()
	require.NotNil(t, last)
	require.Equal(t, 3, *last.WinnerScheduleID)
}

func TestResultCachePutReplacesWholeValue(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	cache := NewResultCache(5*time.Second, clock)

	a := 1
	cache.Put(model.ResolutionResult{WinnerScheduleID: &a, ComputedAt: clock.Now()})
	cache.Put(model.ResolutionResult{ComputedAt: clock.Now()})

	result, fresh := cache.Get()
	require.True(t, fresh)
	require.Nil(t, result.WinnerScheduleID)
}

func TestResultCacheDefaultTTL(t *testing.T) {
	clock := newFakeClock(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	cache := NewResultCache(0, clock)

	cache.Put(model.ResolutionResult{ComputedAt: clock.Now()})
	clock.Advance(DefaultResultTTL)
	_, fresh := cache.Get()
	require.True(t, fresh)

	clock.Advance(time.Second)
	_, fresh = cache.Get()
	require.False(t, fresh)
}
