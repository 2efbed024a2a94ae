package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/stateanchor/stateanchor/internal/model"
)

// azureAPIVersion is the Chat Completions API version the deployments target.
const azureAPIVersion = "2024-08-01-preview"

// OpenAIProvider implements Provider for the OpenAI API and Azure OpenAI
// deployments, which share a client.
type OpenAIProvider struct {
	client *openai.Client
	name   string
	cfg    model.LLMConfig
}

// NewOpenAIProvider creates a provider for the public OpenAI API.
func NewOpenAIProvider(cfg model.LLMConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		name:   "openai",
		cfg:    cfg,
	}, nil
}

// NewAzureProvider creates a provider for an Azure OpenAI deployment. The
// configured model name is the deployment name.
func NewAzureProvider(cfg model.LLMConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Azure OpenAI API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("Azure OpenAI endpoint is required")
	}

	endpoint := normalizeEndpoint(cfg.BaseURL)
	clientConfig := openai.DefaultAzureConfig(cfg.APIKey, endpoint)
	clientConfig.APIVersion = azureAPIVersion

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		name:   "azure",
		cfg:    cfg,
	}, nil
}

// normalizeEndpoint tolerates endpoints pasted without a scheme.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.Trim(endpoint, `"'`)
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	return endpoint
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// IsAvailable checks the API with a lightweight models listing.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	if _, err := p.client.ListModels(ctx); err != nil {
		log.Warn().Err(err).Str("provider", p.name).Msg("availability check failed")
		return false
	}
	return true
}

// Reflect generates the reflection via the Chat Completions API.
func (p *OpenAIProvider) Reflect(ctx context.Context, req Request) (*Response, error) {
	mdl := req.Model
	if mdl == "" {
		mdl = p.cfg.Model
	}
	if mdl == "" {
		if p.name == "azure" {
			return nil, fmt.Errorf("azure deployment name is required")
		}
		mdl = openai.GPT4oMini
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.cfg.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, timeoutOrDefault(p.cfg))
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: mdl,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", p.name)
	}

	return &Response{
		Text:       strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:      mdl,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
