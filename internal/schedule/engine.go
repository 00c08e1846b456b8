package schedule

import (
	"github.com/rs/zerolog"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// Engine answers the viewer-facing "what should be on screen" query. Reads
// are served from the ResultCache and refreshed through the resolver when the
// cached result has aged out; a viewer request never fans out per call beyond
// one snapshot fetch.
type Engine struct {
	repo     Repository
	resolver *Resolver
	cache    *ResultCache
	clock    Clock
	logger   zerolog.Logger
}

func NewEngine(repo Repository, resolver *Resolver, cache *ResultCache, clock Clock, logger zerolog.Logger) *Engine {
	return &Engine{
		repo:     repo,
		resolver: resolver,
		cache:    cache,
		clock:    clock,
		logger:   logger,
	}
}

// Cache exposes the shared result cache so the monitor can write through it.
func (e *Engine) Cache() *ResultCache { return e.cache }

// ResolveCurrentContent returns the content a display should show right now,
// or nil when nothing is active. It never returns an error: if the snapshot
// fetch fails the previous cached result is served unchanged.
func (e *Engine) ResolveCurrentContent() *model.ContentPayload {
	if result, fresh := e.cache.Get(); fresh {
		return result.Content
	}

	result, err := e.Refresh()
	if err != nil {
		if last := e.cache.Last(); last != nil {
			return last.Content
		}
		return nil
	}
	return result.Content
}

// Refresh fetches a schedule snapshot, resolves it against the current
// instant, and swaps the result into the cache.
func (e *Engine) Refresh() (model.ResolutionResult, error) {
	schedules, err := e.repo.ListActiveWithApprovedContent()
	if err != nil {
		e.logger.Error().Err(err).Msg("schedule snapshot fetch failed")
		return model.ResolutionResult{}, err
	}

	result := e.resolver.ResolveActive(schedules, e.clock.Now())
	e.cache.Put(result)
	return result, nil
}
