package notify

import "github.com/Solara-Media-LLC/helios/internal/schedule"

// MultiSink fans one event out to several sinks.
type MultiSink []schedule.NotificationSink

func (m MultiSink) Publish(event schedule.Event) {
	for _, sink := range m {
		sink.Publish(event)
	}
}
