package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	// ErrClientUnavailable means no grading backend is configured or reachable.
	ErrClientUnavailable = errors.New("language model client unavailable")
	// ErrEmptyCompletion means the backend answered with no text.
	ErrEmptyCompletion = errors.New("empty response from language model")
)

type GenerationOptions struct {
	System      string
	Temperature float32
	MaxTokens   int
}

// TextGenerator is the chat-completion surface shared by every LLM backend.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

type RetryPolicy struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	Delay          time.Duration
}

// Budget is the longest a single GenerateTextWithRetry call can take, or zero
// when attempts are unbounded.
func (p RetryPolicy) Budget() time.Duration {
	if p.AttemptTimeout <= 0 {
		return 0
	}
	attempts := max(p.MaxAttempts, 1)
	return time.Duration(attempts)*p.AttemptTimeout + time.Duration(attempts-1)*p.Delay
}

// GenerateTextWithRetry bounds each attempt by the policy timeout and retries
// transport failures. Empty completions are returned immediately.
func GenerateTextWithRetry(ctx context.Context, gen TextGenerator, prompt string, opts GenerationOptions, policy RetryPolicy) (string, error) {
	if gen == nil {
		return "", ErrClientUnavailable
	}

	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := generateOnce(ctx, gen, prompt, opts, policy.AttemptTimeout)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrEmptyCompletion) || errors.Is(err, ErrClientUnavailable) {
			return "", err
		}

		lastErr = err

		if ctx.Err() != nil {
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		}

		if attempt < attempts {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(policy.Delay):
			}
		}
	}

	return "", fmt.Errorf("%w: failed after %d attempts: %w", ErrClientUnavailable, attempts, lastErr)
}

func generateOnce(ctx context.Context, gen TextGenerator, prompt string, opts GenerationOptions, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return gen.GenerateText(ctx, prompt, opts)
}
