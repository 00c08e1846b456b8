package notify

import (
	"context"
	"time"

	"github.com/Solara-Media-LLC/helios/internal/schedule"

	redisclient "github.com/Solara-Media-LLC/helios/internal/redis"
)

// CurrentContentKey holds the latest winning content payload so other
// instances (and operators poking at redis) can see what the fleet shows.
const CurrentContentKey = "helios:current_content"

// currentContentTTL outlives several monitor intervals; a dead monitor ages
// the mirror out instead of pinning stale content forever.
const currentContentTTL = 5 * time.Minute

// RedisSink mirrors content transitions into redis. It ignores
// schedules_edited events; only the winning payload is worth mirroring.
type RedisSink struct {
	client *redisclient.Client
}

func NewRedisSink(client *redisclient.Client) *RedisSink {
	return &RedisSink{client: client}
}

func (s *RedisSink) Publish(event schedule.Event) {
	if event.Type != schedule.EventContentChanged {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.client.SetJSON(ctx, CurrentContentKey, event, currentContentTTL)
}
