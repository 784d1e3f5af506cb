// Package ai wraps the generative-text service behind a total function:
// Reply always produces displayable text, never an error.
package ai

import (
	"context"

	"go.uber.org/zap"
)

const (
	offlineReply  = "I'm currently offline (API Key missing)."
	failureReply  = "Sorry, I couldn't process that request right now."
	thinkingReply = "Thinking..."

	systemInstruction = "You are a helpful, friendly, and concise AI assistant " +
		"inside a WhatsApp-like chat application. Keep your answers brief and " +
		"conversational, using emojis occasionally."
)

// Generator produces text for a prompt under a system instruction.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Responder is the gateway the chat engine talks to. Stateless between
// calls: no multi-turn context is threaded.
type Responder struct {
	gen    Generator
	logger *zap.Logger
}

// New creates a responder backed by the given generator. A nil generator
// means no credential was configured; every reply is the offline notice.
func New(gen Generator, logger *zap.Logger) *Responder {
	return &Responder{gen: gen, logger: logger}
}

// Reply returns the assistant's answer for the prompt. Failures of the
// underlying service are absorbed into a fixed apology; an empty success is
// mapped to a placeholder. Latency is unbounded, so callers must not block
// other work on this.
func (r *Responder) Reply(ctx context.Context, prompt string) string {
	if r.gen == nil {
		return offlineReply
	}

	text, err := r.gen.Generate(ctx, systemInstruction, prompt)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("generate failed", zap.Error(err))
		}
		return failureReply
	}
	if text == "" {
		return thinkingReply
	}
	return text
}
