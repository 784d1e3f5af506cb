package bus

import "time"

// Event kinds published by the engines. Subscribers filter by namespace
// prefix ("chat." or "call.").
const (
	ChatMessage   = "chat.message"   // payload: chat id
	ChatStatus    = "chat.status"    // payload: StatusChange
	ChatTyping    = "chat.typing"    // payload: chat id
	ChatActivated = "chat.activated" // payload: chat id
	CallState     = "call.state"     // payload: call status string
	CallTick      = "call.tick"      // payload: duration seconds
	CallMedia     = "call.media"     // payload: media error text, "" when cleared
	CallEnded     = "call.ended"
)

// Event is a domain notification published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// StatusChange is the payload for chat.status events.
type StatusChange struct {
	ChatID    string
	MessageID string
	Status    string
}
