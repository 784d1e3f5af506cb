package ai

import (
	"context"
	"errors"
	"testing"
)

type fakeGenerator struct {
	text string
	err  error

	gotSystem string
	gotPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	f.gotSystem = system
	f.gotPrompt = prompt
	return f.text, f.err
}

func TestReplyOfflineWithoutGenerator(t *testing.T) {
	r := New(nil, nil)
	got := r.Reply(context.Background(), "hello")
	if got != offlineReply {
		t.Errorf("Reply() = %q, want offline notice", got)
	}
}

func TestReplyPassesThroughText(t *testing.T) {
	gen := &fakeGenerator{text: "Hi there! 👋"}
	r := New(gen, nil)

	got := r.Reply(context.Background(), "Hello")
	if got != "Hi there! 👋" {
		t.Errorf("Reply() = %q, want generator text", got)
	}
	if gen.gotPrompt != "Hello" {
		t.Errorf("prompt = %q, want Hello", gen.gotPrompt)
	}
	if gen.gotSystem == "" {
		t.Error("system instruction was not passed through")
	}
}

func TestReplyAbsorbsErrors(t *testing.T) {
	r := New(&fakeGenerator{err: errors.New("quota exceeded")}, nil)
	got := r.Reply(context.Background(), "hello")
	if got != failureReply {
		t.Errorf("Reply() = %q, want apology", got)
	}
}

func TestReplyMapsEmptyToPlaceholder(t *testing.T) {
	r := New(&fakeGenerator{text: ""}, nil)
	got := r.Reply(context.Background(), "hello")
	if got != thinkingReply {
		t.Errorf("Reply() = %q, want placeholder", got)
	}
}
