package model

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to MessageStatus
		want     bool
	}{
		{StatusSent, StatusDelivered, true},
		{StatusSent, StatusRead, true},
		{StatusDelivered, StatusRead, true},
		{StatusDelivered, StatusSent, false},
		{StatusRead, StatusDelivered, false},
		{StatusRead, StatusSent, false},
		{StatusRead, StatusRead, false},
		{StatusSent, StatusSent, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanAdvance(tc.to); got != tc.want {
			t.Errorf("CanAdvance(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSeedChatsConsistency(t *testing.T) {
	chats, messages := SeedChats()

	if len(chats) != 3 {
		t.Fatalf("got %d chats, want 3", len(chats))
	}
	for _, c := range chats {
		msgs, ok := messages[c.ID]
		if !ok || len(msgs) == 0 {
			t.Errorf("chat %s has no message sequence", c.ID)
			continue
		}
		if c.LastMessage == nil {
			t.Errorf("chat %s has no LastMessage", c.ID)
			continue
		}
		if c.LastMessage.ID != msgs[len(msgs)-1].ID {
			t.Errorf("chat %s LastMessage != tail of sequence", c.ID)
		}
		if c.LastMessage.ChatID != c.ID {
			t.Errorf("chat %s LastMessage.ChatID = %s", c.ID, c.LastMessage.ChatID)
		}
	}
}
