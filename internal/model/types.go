package model

// User is a chat participant's identity. Immutable after seeding.
type User struct {
	ID          string
	Name        string
	Avatar      string
	PhoneNumber string
	About       string
}

// MessageType classifies message content. Only TextMessage is produced by
// the current engines; the others are reserved for display of seeded data.
type MessageType string

const (
	TextMessage  MessageType = "TEXT"
	ImageMessage MessageType = "IMAGE"
	VoiceMessage MessageType = "VOICE"
)

// Message is one entry in a chat's thread. Status is the only field that
// changes after creation, and only through the session store.
type Message struct {
	ID        string
	ChatID    string
	SenderID  string
	Content   string
	Timestamp int64 // unix milliseconds
	Status    MessageStatus
	Type      MessageType
	FromMe    bool
}

// Chat is a conversation with a single participant (or a group, display
// only). LastMessage is a denormalized copy of the most recently appended
// message and is kept consistent by the session store.
type Chat struct {
	ID          string
	Participant User
	UnreadCount int
	LastMessage *Message
	IsGroup     bool
	IsOnline    bool
	Typing      bool
}

// CallLogEntry is a row in the Calls tab. Display only; live calls never
// append to it.
type CallLogEntry struct {
	Participant User
	IsVideo     bool
	Outgoing    bool
	Missed      bool
	Timestamp   int64
}
