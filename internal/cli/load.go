package cli

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/stateanchor/stateanchor/internal/model"
)

// buildConfig assembles the effective configuration: defaults, then config
// file / STATEANCHOR_* values, then the provider and mail environment
// variables as fallback for anything still unset.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	overrideString(&cfg.HTTP.UserAgent, "http.user_agent")
	overrideDuration(&cfg.HTTP.Timeout, "http.timeout")
	overrideString(&cfg.HTTP.HTTPProxy, "http.http_proxy")
	overrideString(&cfg.HTTP.HTTPSProxy, "http.https_proxy")

	overrideString(&cfg.LLM.Provider, "llm.provider")
	overrideString(&cfg.LLM.Model, "llm.model")
	overrideString(&cfg.LLM.APIKey, "llm.api_key")
	overrideString(&cfg.LLM.BaseURL, "llm.base_url")
	overrideDuration(&cfg.LLM.Timeout, "llm.timeout")
	overrideInt(&cfg.LLM.MaxTokens, "llm.max_tokens")
	overrideInt(&cfg.LLM.MaxWords, "llm.max_words")
	overrideBool(&cfg.LLM.StrictEvidence, "llm.strict_evidence")
	overrideString(&cfg.LLM.PromptFile, "llm.prompt_file")

	overrideString(&cfg.Mail.Host, "mail.host")
	overrideInt(&cfg.Mail.Port, "mail.port")
	overrideString(&cfg.Mail.User, "mail.user")
	overrideString(&cfg.Mail.Password, "mail.password")
	overrideString(&cfg.Mail.From, "mail.from")
	overrideString(&cfg.Mail.To, "mail.to")
	overrideString(&cfg.Mail.Subject, "mail.subject")
	overrideInt(&cfg.Mail.RetryCount, "mail.retry_count")
	overrideDuration(&cfg.Mail.RetryBackoff, "mail.retry_backoff")

	overrideString(&cfg.WorldBank.BaseURL, "worldbank.base_url")
	overrideDuration(&cfg.WorldBank.Timeout, "worldbank.timeout")
	overrideDuration(&cfg.WorldBank.CacheTTL, "worldbank.cache_ttl")
	overrideFloat(&cfg.WorldBank.Rate, "worldbank.rate")
	overrideInt(&cfg.WorldBank.Burst, "worldbank.burst")

	overrideInt(&cfg.Verify.Workers, "verify.workers")
	overrideDuration(&cfg.Verify.Timeout, "verify.timeout")
	overrideFloat(&cfg.Verify.Rate, "verify.rate")
	overrideInt(&cfg.Verify.Burst, "verify.burst")

	cfg.Output.Verbose = verbose
	cfg.Output.Debug = debug

	applyLegacyEnv(cfg)
	return cfg
}

// applyLegacyEnv fills gaps from the bare environment variables an existing
// cron deployment exports. Values are stripped of stray shell quoting.
func applyLegacyEnv(cfg *model.Config) {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = envTrim(key)
		}
	}

	fill(&cfg.Mail.Host, "EMAIL_SMTP_SERVER")
	if !viper.IsSet("mail.port") {
		if port, err := strconv.Atoi(envTrim("EMAIL_SMTP_PORT")); err == nil && port != 0 {
			cfg.Mail.Port = port
		}
	}
	fill(&cfg.Mail.User, "ICLOUD_EMAIL")
	fill(&cfg.Mail.Password, "ICLOUD_PASSWORD")
	fill(&cfg.Mail.To, "EMAIL_RECIPIENT")
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.User
	}

	if cfg.LLM.APIKey == "" {
		switch strings.ToLower(cfg.LLM.Provider) {
		case "azure", "azure-openai":
			cfg.LLM.APIKey = envTrim("AZURE_OPENAI_API_KEY")
		case "openai":
			cfg.LLM.APIKey = envTrim("OPENAI_API_KEY")
		case "anthropic", "claude":
			cfg.LLM.APIKey = envTrim("ANTHROPIC_API_KEY")
		}
	}
	if cfg.LLM.BaseURL == "" {
		switch strings.ToLower(cfg.LLM.Provider) {
		case "azure", "azure-openai":
			cfg.LLM.BaseURL = envTrim("AZURE_OPENAI_ENDPOINT")
		case "ollama":
			cfg.LLM.BaseURL = envTrim("OLLAMA_BASE_URL")
		}
	}
	if cfg.LLM.Model == "" {
		switch strings.ToLower(cfg.LLM.Provider) {
		case "azure", "azure-openai":
			cfg.LLM.Model = envTrim("AZURE_OPENAI_DEPLOYMENT")
		}
	}
}

func envTrim(key string) string {
	return strings.Trim(os.Getenv(key), `"'`)
}

func overrideString(dst *string, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func overrideInt(dst *int, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetInt(key)
	}
}

func overrideFloat(dst *float64, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetFloat64(key)
	}
}

func overrideBool(dst *bool, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetBool(key)
	}
}

func overrideDuration(dst *time.Duration, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetDuration(key)
	}
}
