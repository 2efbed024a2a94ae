// Package llm generates the daily reflection from the evidence-constrained
// prompt and post-processes the model output.
package llm

import (
	"context"
	"time"

	"github.com/stateanchor/stateanchor/internal/model"
)

// systemPrompt keeps the model anchored to the evidence pack.
const systemPrompt = "You are a calm, factual assistant. Never invent numbers, rankings, or policies."

// temperature is low on purpose: the reflection should stay close to the pack.
const temperature = 0.35

// Provider is the interface every reflection backend implements.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Reflect generates the narrative reflection for the prompt.
	Reflect(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks whether the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Request is the input for reflection generation.
type Request struct {
	// Prompt is the full prompt: base instructions plus the rendered focus
	// and evidence pack.
	Prompt string

	// Model overrides the configured model (or deployment, for Azure).
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// Response is the raw model output before post-processing.
type Response struct {
	Text       string
	Model      string
	TokensUsed int
}

// timeoutOrDefault keeps provider timeouts total even with a zero config.
func timeoutOrDefault(cfg model.LLMConfig) time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return 60 * time.Second
}
