package schedule

import (
	"fmt"
	"time"
)

// Clock supplies the current instant. Injected everywhere resolution needs
// "now" so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// NowInZone converts now into the named IANA zone. An unknown zone is an
// error; schedules are validated against this at creation time, so hitting it
// during resolution means the stored row went bad after the fact.
func NowInZone(now time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return now.In(loc), nil
}
