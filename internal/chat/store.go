package chat

import (
	"fmt"
	"sync"

	"github.com/matheus3301/whatschat/internal/model"
)

// Store is the aggregate root for all conversation state: the chat map, the
// per-chat message sequences, and the active chat. Everything lives in
// memory for the lifetime of the process. All mutation goes through store
// methods so the lastMessage/message-list invariant can never be observed
// broken.
type Store struct {
	mu       sync.RWMutex
	chats    map[string]*model.Chat
	order    []string
	messages map[string][]model.Message
	active   string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		chats:    make(map[string]*model.Chat),
		messages: make(map[string][]model.Message),
	}
}

// NewSeededStore creates a store loaded with the static demo conversations.
func NewSeededStore() *Store {
	s := NewStore()
	chats, messages := model.SeedChats()
	for i := range chats {
		s.AddChat(chats[i])
	}
	s.mu.Lock()
	for id, msgs := range messages {
		s.messages[id] = append(s.messages[id][:0], msgs...)
	}
	s.mu.Unlock()
	return s
}

// AddChat registers a chat. Every chat gets a message sequence entry, even
// if empty.
func (s *Store) AddChat(c model.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	cc := c
	s.chats[c.ID] = &cc
	if _, ok := s.messages[c.ID]; !ok {
		s.messages[c.ID] = nil
	}
}

// Chat returns a snapshot of one chat.
func (s *Store) Chat(id string) (model.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[id]
	if !ok {
		return model.Chat{}, false
	}
	return snapshotChat(c), true
}

// Chats returns snapshots of all chats in display order.
func (s *Store) Chats() []model.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Chat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshotChat(s.chats[id]))
	}
	return out
}

// Messages returns a copy of a chat's message sequence in append order.
func (s *Store) Messages(chatID string) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[chatID]
	out := make([]model.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Append adds a message to its chat and updates the chat's LastMessage in
// the same critical section, so no reader can observe one without the
// other. Messages from others targeting a non-active chat bump the unread
// counter.
func (s *Store) Append(msg model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[msg.ChatID]
	if !ok {
		return fmt.Errorf("append: unknown chat %q", msg.ChatID)
	}

	s.messages[msg.ChatID] = append(s.messages[msg.ChatID], msg)
	last := msg
	c.LastMessage = &last
	if !msg.FromMe && s.active != msg.ChatID {
		c.UnreadCount++
	}
	return nil
}

// AdvanceStatus moves a message's status forward. Backward or repeated
// transitions, unknown chats, and unknown messages are all silent no-ops;
// the return value reports whether the transition applied. A stale delivery
// timer firing after the read short-circuit lands here and does nothing.
func (s *Store) AdvanceStatus(chatID, msgID string, next model.MessageStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[chatID]
	for i := range msgs {
		if msgs[i].ID != msgID {
			continue
		}
		if !msgs[i].Status.CanAdvance(next) {
			return false
		}
		msgs[i].Status = next
		// Keep the denormalized copy in step.
		if c := s.chats[chatID]; c != nil && c.LastMessage != nil && c.LastMessage.ID == msgID {
			c.LastMessage.Status = next
		}
		return true
	}
	return false
}

// SetTyping flips the transient typing flag on a chat.
func (s *Store) SetTyping(chatID string, typing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.chats[chatID]; ok {
		c.Typing = typing
	}
}

// SetActive marks a chat as the focused thread and clears its unread
// counter. An empty id deactivates the thread view; all other state is
// retained.
func (s *Store) SetActive(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = chatID
	if c, ok := s.chats[chatID]; ok {
		c.UnreadCount = 0
	}
}

// Active returns the focused chat id, or empty.
func (s *Store) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func snapshotChat(c *model.Chat) model.Chat {
	out := *c
	if c.LastMessage != nil {
		last := *c.LastMessage
		out.LastMessage = &last
	}
	return out
}
