package llm

import "expert-chat/internal/config"

// Config controls the chat completion call
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	BaseURL     string // empty means the public OpenAI endpoint
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
	}
}

// FromAppConfig maps the openai section of the application config.
func FromAppConfig(c config.OpenAIConfig) Config {
	cfg := *DefaultConfig()
	cfg.APIKey = c.APIKey
	cfg.BaseURL = c.BaseURL
	if c.Model != "" {
		cfg.Model = c.Model
	}
	cfg.Temperature = c.Temperature
	return cfg
}
