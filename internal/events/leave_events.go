package events

import (
	"encoding/json"
	"time"
)

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

// Kafka headers set on every leave event message.
const (
	HeaderEventType     = "event_type"
	HeaderSchemaVersion = "schema_version"
)

// LeaveSchemaVersion is the payload schema consumers understand.
const LeaveSchemaVersion = 1

// LeaveEventMessage is the wire envelope of a leave lifecycle event.
// Payload is the leave snapshot tagged with SchemaVersion.
type LeaveEventMessage struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	LeaveID       string          `json:"leave_id"`
	Source        string          `json:"source"`
	SchemaVersion int             `json:"schema_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}
