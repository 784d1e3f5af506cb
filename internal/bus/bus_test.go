package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("chat.", 10)
	defer unsub()

	b.Emit(ChatMessage, "c1")

	select {
	case evt := <-ch:
		if evt.Kind != ChatMessage {
			t.Errorf("got kind %q, want %q", evt.Kind, ChatMessage)
		}
		if evt.Payload != "c1" {
			t.Errorf("got payload %v, want c1", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("call.", 10)
	defer unsub()

	b.Emit(ChatTyping, "c1")
	b.Emit(CallState, "RINGING")

	select {
	case evt := <-ch:
		if evt.Kind != CallState {
			t.Errorf("got kind %q, want %q", evt.Kind, CallState)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	// Ensure the chat event was not delivered.
	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
		// Expected: no more events.
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("chat.", 10)
	unsub()

	b.Emit(ChatMessage, "c1")

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
		// Expected.
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("call.", 1)
	defer unsub()

	// Fill buffer.
	b.Emit(CallTick, 1)
	// This should be dropped (non-blocking).
	b.Emit(CallTick, 2)

	evt := <-ch
	if evt.Payload != 1 {
		t.Errorf("got payload %v, want 1", evt.Payload)
	}
}
