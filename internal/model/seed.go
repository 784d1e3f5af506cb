package model

import (
	"time"

	"github.com/google/uuid"
)

// CurrentUser is the local identity. There is no login; the phone-number
// form is cosmetic.
var CurrentUser = User{
	ID:          "me",
	Name:        "You",
	Avatar:      "https://picsum.photos/200/200?random=99",
	PhoneNumber: "+1 555 0199",
	About:       "Hey there! I am using WhatsChat.",
}

// AssistantUser is the one contact whose replies come from the AI gateway.
var AssistantUser = User{
	ID:          "gemini",
	Name:        "Gemini AI",
	Avatar:      "https://upload.wikimedia.org/wikipedia/commons/8/8a/Google_Gemini_logo.svg",
	PhoneNumber: "AI",
	About:       "Always here to help.",
}

// Contacts is the static address book shown in the Status tab.
var Contacts = []User{
	AssistantUser,
	{
		ID:          "u1",
		Name:        "Alice Johnson",
		Avatar:      "https://picsum.photos/200/200?random=1",
		PhoneNumber: "+1 555 0101",
		About:       "Busy working 💻",
	},
	{
		ID:          "u2",
		Name:        "Bob Smith",
		Avatar:      "https://picsum.photos/200/200?random=2",
		PhoneNumber: "+1 555 0102",
		About:       "At the gym 🏋️",
	},
	{
		ID:          "u3",
		Name:        "Family Group",
		Avatar:      "https://picsum.photos/200/200?random=3",
		PhoneNumber: "",
		About:       "Family first ❤️",
	},
}

// SeedChats builds the initial conversations, each with its opening
// message. The returned chats and messages share IDs, so callers can load
// both into a session store in one pass.
func SeedChats() ([]Chat, map[string][]Message) {
	now := time.Now().UnixMilli()

	opening := []Message{
		{
			ID:        uuid.New().String(),
			ChatID:    "c1",
			SenderID:  AssistantUser.ID,
			Content:   "Hello! I am Gemini. Ask me anything!",
			Timestamp: now - 10_000,
			Status:    StatusRead,
			Type:      TextMessage,
		},
		{
			ID:        uuid.New().String(),
			ChatID:    "c2",
			SenderID:  "u1",
			Content:   "See you tomorrow!",
			Timestamp: now - time.Hour.Milliseconds(),
			Status:    StatusDelivered,
			Type:      TextMessage,
		},
		{
			ID:        uuid.New().String(),
			ChatID:    "c3",
			SenderID:  CurrentUser.ID,
			Content:   "Can you send the PDF?",
			Timestamp: now - 24*time.Hour.Milliseconds(),
			Status:    StatusRead,
			Type:      TextMessage,
			FromMe:    true,
		},
	}

	chats := []Chat{
		{ID: "c1", Participant: AssistantUser, UnreadCount: 1, IsOnline: true, LastMessage: &opening[0]},
		{ID: "c2", Participant: Contacts[1], UnreadCount: 2, LastMessage: &opening[1]},
		{ID: "c3", Participant: Contacts[2], LastMessage: &opening[2]},
	}

	messages := map[string][]Message{
		"c1": {opening[0]},
		"c2": {opening[1]},
		"c3": {opening[2]},
	}

	return chats, messages
}

// SeedCallLog builds the static history for the Calls tab.
func SeedCallLog() []CallLogEntry {
	now := time.Now().UnixMilli()
	return []CallLogEntry{
		{Participant: Contacts[1], IsVideo: true, Outgoing: true, Timestamp: now - 2*time.Hour.Milliseconds()},
		{Participant: Contacts[2], Missed: true, Timestamp: now - 26*time.Hour.Milliseconds()},
		{Participant: AssistantUser, Outgoing: true, Timestamp: now - 48*time.Hour.Milliseconds()},
	}
}
