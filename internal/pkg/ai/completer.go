package ai

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured     = errors.New("completion provider not configured")
	ErrEmptyCompletion   = errors.New("completion provider returned no text")
	ErrMalformedResponse = errors.New("completion provider response is malformed")
)

// Completer turns a prompt into generated text. Implementations must not retry;
// callers treat every error the same way and fall back to local heuristics.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}

// NullCompleter is the Completer used when no API credential is configured.
type NullCompleter struct{}

func (NullCompleter) Complete(context.Context, string, int, float32) (string, error) {
	return "", ErrNotConfigured
}

// IsConfigured reports whether c can reach a real provider.
func IsConfigured(c Completer) bool {
	if c == nil {
		return false
	}
	switch c.(type) {
	case NullCompleter, *NullCompleter:
		return false
	}
	return true
}
