package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/whatschat/internal/bus"
	"github.com/matheus3301/whatschat/internal/model"
	"go.uber.org/zap"
)

// DefaultDeliveryDelay is how long a sent message waits before its single
// tick becomes a double tick.
const DefaultDeliveryDelay = time.Second

var (
	// ErrEmptyMessage rejects sends whose text is empty after trimming.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrUnknownChat rejects sends to a chat id the store has never seen.
	ErrUnknownChat = errors.New("chat: unknown chat")
)

// Responder produces the assistant's reply text. Always resolves; never an
// error. See the ai package.
type Responder interface {
	Reply(ctx context.Context, prompt string) string
}

// Engine drives a message's delivery-status progression and the assistant
// contact's reply round trip. There is no real transport: delivery is a
// scheduled local transition, and only the assistant chat ever answers.
type Engine struct {
	store     *Store
	responder Responder
	bus       *bus.Bus
	logger    *zap.Logger

	// Self authors outgoing messages; AssistantID marks the one chat
	// participant whose replies come from the responder.
	Self          model.User
	AssistantID   string
	DeliveryDelay time.Duration

	mu       sync.Mutex
	delivery map[string]*time.Timer // message id -> pending delivered transition
}

// NewEngine creates a lifecycle engine over the given session store.
func NewEngine(store *Store, responder Responder, b *bus.Bus, logger *zap.Logger) *Engine {
	return &Engine{
		store:         store,
		responder:     responder,
		bus:           b,
		logger:        logger,
		Self:          model.CurrentUser,
		AssistantID:   model.AssistantUser.ID,
		DeliveryDelay: DefaultDeliveryDelay,
	}
}

// Store exposes the session store for read-only snapshot access by the
// presentation shell.
func (e *Engine) Store() *Store {
	return e.store
}

// SendMessage appends an outgoing text message to the chat, schedules its
// SENT -> DELIVERED transition, and, for the assistant chat, starts the
// reply round trip. The append and the chat's LastMessage update are one
// atomic state change. Overlapping sends to the assistant are allowed;
// replies apply in completion order, each paired with its own outgoing
// message.
func (e *Engine) SendMessage(ctx context.Context, chatID, text string) (model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Message{}, ErrEmptyMessage
	}
	chatSnap, ok := e.store.Chat(chatID)
	if !ok {
		return model.Message{}, ErrUnknownChat
	}

	msg := model.Message{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		SenderID:  e.Self.ID,
		Content:   text,
		Timestamp: time.Now().UnixMilli(),
		Status:    model.StatusSent,
		Type:      model.TextMessage,
		FromMe:    true,
	}
	if err := e.store.Append(msg); err != nil {
		return model.Message{}, err
	}
	e.bus.Emit(bus.ChatMessage, chatID)

	e.scheduleDelivery(chatID, msg.ID)

	if chatSnap.Participant.ID == e.AssistantID {
		e.store.SetTyping(chatID, true)
		e.bus.Emit(bus.ChatTyping, chatID)
		go e.assistantRoundTrip(ctx, chatID, msg)
	}

	e.logger.Info("message sent",
		zap.String("chat_id", chatID),
		zap.String("msg_id", msg.ID))

	return msg, nil
}

// SetActiveChat focuses a chat and resets its unread counter. Only that
// chat's counter is touched. Empty id deactivates the thread view.
func (e *Engine) SetActiveChat(chatID string) {
	e.store.SetActive(chatID)
	e.bus.Emit(bus.ChatActivated, chatID)
}

// scheduleDelivery registers a cancellable timer keyed by message id. The
// transition goes through the store's monotonic guard, so a timer that
// outlives a read short-circuit is harmless even if cancellation loses the
// race.
func (e *Engine) scheduleDelivery(chatID, msgID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.delivery == nil {
		e.delivery = make(map[string]*time.Timer)
	}
	e.delivery[msgID] = time.AfterFunc(e.DeliveryDelay, func() {
		e.mu.Lock()
		delete(e.delivery, msgID)
		e.mu.Unlock()
		if e.store.AdvanceStatus(chatID, msgID, model.StatusDelivered) {
			e.bus.Emit(bus.ChatStatus, bus.StatusChange{
				ChatID:    chatID,
				MessageID: msgID,
				Status:    string(model.StatusDelivered),
			})
		}
	})
}

// cancelDelivery stops a pending delivered transition, if still scheduled.
func (e *Engine) cancelDelivery(msgID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t, ok := e.delivery[msgID]; ok {
		t.Stop()
		delete(e.delivery, msgID)
	}
}

// assistantRoundTrip runs on its own goroutine so the rest of the client
// stays interactive while the gateway call is in flight.
func (e *Engine) assistantRoundTrip(ctx context.Context, chatID string, outgoing model.Message) {
	replyText := e.responder.Reply(ctx, outgoing.Content)

	e.store.SetTyping(chatID, false)
	e.bus.Emit(bus.ChatTyping, chatID)

	reply := model.Message{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		SenderID:  e.AssistantID,
		Content:   replyText,
		Timestamp: time.Now().UnixMilli(),
		Status:    model.StatusRead,
		Type:      model.TextMessage,
	}
	if err := e.store.Append(reply); err != nil {
		// The chat vanished mid-flight; drop the stale completion.
		e.logger.Warn("assistant reply dropped", zap.Error(err))
		return
	}
	e.bus.Emit(bus.ChatMessage, chatID)

	// The assistant has read the original message: collapse straight to
	// READ and retire the pending delivered timer.
	e.cancelDelivery(outgoing.ID)
	if e.store.AdvanceStatus(chatID, outgoing.ID, model.StatusRead) {
		e.bus.Emit(bus.ChatStatus, bus.StatusChange{
			ChatID:    chatID,
			MessageID: outgoing.ID,
			Status:    string(model.StatusRead),
		})
	}

	e.logger.Info("assistant replied",
		zap.String("chat_id", chatID),
		zap.String("msg_id", reply.ID))
}
