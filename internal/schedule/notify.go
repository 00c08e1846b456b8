package schedule

import (
	"time"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// EventType enumerates notifications pushed to connected viewers.
type EventType string

const (
	// EventContentChanged carries the new winning content, or a nil payload
	// when nothing is active anymore.
	EventContentChanged EventType = "content_changed"
	// EventSchedulesEdited signals out-of-band schedule edits. Informational;
	// it does not itself imply the current content changed.
	EventSchedulesEdited EventType = "schedules_edited"
)

// Event is the notification payload. Delivery is fire-and-forget,
// at-least-once: a duplicate event with an identical payload must be harmless
// to consumers.
type Event struct {
	Type        EventType             `json:"type"`
	Content     *model.ContentPayload `json:"content,omitempty"`
	EditedCount int                   `json:"edited_count,omitempty"`
	EmittedAt   time.Time             `json:"emitted_at"`
}

// NotificationSink is the push channel to connected viewers. The monitor
// calls it but does not implement it.
type NotificationSink interface {
	Publish(event Event)
}
