package model

import "time"

// Config is the complete runtime configuration.
//
// Hierarchy (highest to lowest priority): CLI flags, environment variables
// (STATEANCHOR_* plus the provider API key variables), config file
// (~/.stateanchor/config.yaml), defaults.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	LLM       LLMConfig       `yaml:"llm"`
	Mail      MailConfig      `yaml:"mail"`
	WorldBank WorldBankConfig `yaml:"worldbank"`
	Verify    VerifyConfig    `yaml:"verify"`
	Output    OutputConfig    `yaml:"output"`
}

// HTTPConfig governs all outbound HTTP clients.
type HTTPConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	HTTPProxy  string        `yaml:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy"`
}

// LLMConfig configures the reflection provider.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai", "azure", "anthropic", "ollama"
	Model    string `yaml:"model"`    // Model name, or deployment name for Azure
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"` // Endpoint for Azure/Ollama/custom

	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
	MaxWords  int           `yaml:"max_words"` // Word budget for the reflection body

	// StrictEvidence warns when the model cites fact IDs outside the pack.
	StrictEvidence bool `yaml:"strict_evidence"`

	// PromptFile overrides the embedded base prompt when set.
	PromptFile string `yaml:"prompt_file,omitempty"`
}

// MailConfig configures SMTP delivery. Credentials come from the environment
// or config file, never from flags.
type MailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password,omitempty"`

	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Subject string `yaml:"subject"`

	RetryCount   int           `yaml:"retry_count"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// WorldBankConfig configures the indicator client.
type WorldBankConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"` // In-process only; nothing survives the run
	Rate     float64       `yaml:"rate"`      // Requests per second per host
	Burst    int           `yaml:"burst"`
}

// VerifyConfig configures the source link checker.
type VerifyConfig struct {
	Workers int           `yaml:"workers"`
	Timeout time.Duration `yaml:"timeout"`
	Rate    float64       `yaml:"rate"` // Requests per second per host
	Burst   int           `yaml:"burst"`
}

// OutputConfig controls diagnostics.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	Debug   bool `yaml:"debug"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "state-anchor/0.1 (+https://github.com/stateanchor/stateanchor)",
		},
		LLM: LLMConfig{
			Provider:       "azure",
			Timeout:        60 * time.Second,
			MaxTokens:      1100,
			MaxWords:       550,
			StrictEvidence: true,
		},
		Mail: MailConfig{
			Port:         587,
			Subject:      "state-anchor: Daily Baseline State Primer",
			RetryCount:   3,
			RetryBackoff: 100 * time.Millisecond,
		},
		WorldBank: WorldBankConfig{
			BaseURL:  "https://api.worldbank.org/v2",
			Timeout:  8 * time.Second,
			CacheTTL: 15 * time.Minute,
			Rate:     2,
			Burst:    4,
		},
		Verify: VerifyConfig{
			Workers: 8,
			Timeout: 10 * time.Second,
			Rate:    1,
			Burst:   2,
		},
	}
}
