package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CONVERSATION_TURN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the straightforward Event implementation used across the app.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewConversationTurn builds the event emitted after each handled dialog turn.
func NewConversationTurn(sessionId, utterance, reply, source string) BaseEvent {
	return BaseEvent{
		Type: "CONVERSATION_TURN",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"utterance":  utterance,
			"reply":      reply,
			"source":     source,
		},
		OccurredAt: time.Now(),
	}
}
