package chat

import (
	"testing"

	"github.com/matheus3301/whatschat/internal/model"
)

func seedStore() *Store {
	s := NewStore()
	s.AddChat(model.Chat{ID: "c1", Participant: model.AssistantUser})
	s.AddChat(model.Chat{ID: "c2", Participant: model.Contacts[1], UnreadCount: 2})
	return s
}

func TestAppendUpdatesLastMessageAtomically(t *testing.T) {
	s := seedStore()

	msg := model.Message{ID: "m1", ChatID: "c1", Content: "hello", Status: model.StatusSent, FromMe: true}
	if err := s.Append(msg); err != nil {
		t.Fatal(err)
	}

	c, ok := s.Chat("c1")
	if !ok {
		t.Fatal("chat missing")
	}
	if c.LastMessage == nil || c.LastMessage.ID != "m1" {
		t.Fatalf("LastMessage = %+v, want m1", c.LastMessage)
	}
	msgs := s.Messages("c1")
	if len(msgs) != 1 || msgs[0].ID != "m1" {
		t.Fatalf("got %d messages, want 1 (m1)", len(msgs))
	}
}

func TestAppendUnknownChat(t *testing.T) {
	s := seedStore()
	if err := s.Append(model.Message{ID: "m1", ChatID: "nope"}); err == nil {
		t.Error("Append() to unknown chat should fail")
	}
}

func TestAppendIncrementsUnreadForInactiveChat(t *testing.T) {
	s := seedStore()
	s.SetActive("c1")

	// Incoming message on the non-active chat bumps the counter.
	_ = s.Append(model.Message{ID: "m1", ChatID: "c2", SenderID: "u1"})
	c, _ := s.Chat("c2")
	if c.UnreadCount != 3 {
		t.Errorf("UnreadCount = %d, want 3", c.UnreadCount)
	}

	// Incoming message on the active chat does not.
	_ = s.Append(model.Message{ID: "m2", ChatID: "c1", SenderID: "gemini"})
	c, _ = s.Chat("c1")
	if c.UnreadCount != 0 {
		t.Errorf("active chat UnreadCount = %d, want 0", c.UnreadCount)
	}

	// Own messages never count as unread.
	_ = s.Append(model.Message{ID: "m3", ChatID: "c2", FromMe: true})
	c, _ = s.Chat("c2")
	if c.UnreadCount != 3 {
		t.Errorf("UnreadCount after own send = %d, want 3", c.UnreadCount)
	}
}

func TestAdvanceStatusForwardOnly(t *testing.T) {
	s := seedStore()
	_ = s.Append(model.Message{ID: "m1", ChatID: "c1", Status: model.StatusSent, FromMe: true})

	if !s.AdvanceStatus("c1", "m1", model.StatusDelivered) {
		t.Error("SENT -> DELIVERED should apply")
	}
	if !s.AdvanceStatus("c1", "m1", model.StatusRead) {
		t.Error("DELIVERED -> READ should apply")
	}

	// READ is terminal; anything after is a silent no-op.
	if s.AdvanceStatus("c1", "m1", model.StatusDelivered) {
		t.Error("READ -> DELIVERED must not apply")
	}
	if s.AdvanceStatus("c1", "m1", model.StatusRead) {
		t.Error("READ -> READ must not apply")
	}

	msgs := s.Messages("c1")
	if msgs[0].Status != model.StatusRead {
		t.Errorf("status = %s, want READ", msgs[0].Status)
	}
}

func TestAdvanceStatusDirectRead(t *testing.T) {
	s := seedStore()
	_ = s.Append(model.Message{ID: "m1", ChatID: "c1", Status: model.StatusSent, FromMe: true})

	if !s.AdvanceStatus("c1", "m1", model.StatusRead) {
		t.Error("SENT -> READ (direct) should apply")
	}
	// A delivery timer firing afterwards must be ignored.
	if s.AdvanceStatus("c1", "m1", model.StatusDelivered) {
		t.Error("late DELIVERED after READ must not apply")
	}
}

func TestAdvanceStatusUnknownTargetsAreNoOps(t *testing.T) {
	s := seedStore()
	if s.AdvanceStatus("c1", "ghost", model.StatusDelivered) {
		t.Error("unknown message should be a no-op")
	}
	if s.AdvanceStatus("ghost", "m1", model.StatusDelivered) {
		t.Error("unknown chat should be a no-op")
	}
}

func TestAdvanceStatusUpdatesLastMessageCopy(t *testing.T) {
	s := seedStore()
	_ = s.Append(model.Message{ID: "m1", ChatID: "c1", Status: model.StatusSent, FromMe: true})

	s.AdvanceStatus("c1", "m1", model.StatusDelivered)

	c, _ := s.Chat("c1")
	if c.LastMessage.Status != model.StatusDelivered {
		t.Errorf("LastMessage.Status = %s, want DELIVERED", c.LastMessage.Status)
	}
}

func TestSetActiveResetsOnlyThatChat(t *testing.T) {
	s := seedStore()
	s.AddChat(model.Chat{ID: "c3", UnreadCount: 5})

	s.SetActive("c2")

	c2, _ := s.Chat("c2")
	c3, _ := s.Chat("c3")
	if c2.UnreadCount != 0 {
		t.Errorf("c2 UnreadCount = %d, want 0", c2.UnreadCount)
	}
	if c3.UnreadCount != 5 {
		t.Errorf("c3 UnreadCount = %d, want 5 (untouched)", c3.UnreadCount)
	}

	// Deactivating retains everything.
	s.SetActive("")
	if s.Active() != "" {
		t.Errorf("Active() = %q, want empty", s.Active())
	}
	if got := len(s.Chats()); got != 3 {
		t.Errorf("chats = %d, want 3", got)
	}
}

func TestSeededStoreInvariants(t *testing.T) {
	s := NewSeededStore()

	chats := s.Chats()
	if len(chats) != 3 {
		t.Fatalf("got %d chats, want 3", len(chats))
	}
	// Every chat's LastMessage must equal the tail of its sequence.
	for _, c := range chats {
		msgs := s.Messages(c.ID)
		if len(msgs) == 0 {
			t.Errorf("chat %s has no seeded messages", c.ID)
			continue
		}
		if c.LastMessage == nil || c.LastMessage.ID != msgs[len(msgs)-1].ID {
			t.Errorf("chat %s LastMessage out of step with message list", c.ID)
		}
	}
}
