package llm

import (
	"fmt"
	"strings"

	"github.com/stateanchor/stateanchor/internal/model"
)

// NewProvider creates a reflection provider from configuration.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg)

	case "azure", "azure-openai":
		return NewAzureProvider(cfg)

	case "anthropic", "claude":
		return NewAnthropicProvider(cfg)

	case "ollama":
		return NewOllamaProvider(cfg)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, azure, anthropic, ollama)", cfg.Provider)
	}
}
