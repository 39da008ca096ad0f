package llm

import (
	"github.com/tmc/langchaingo/llms/openai"
)

// NewModel creates the OpenAI chat model. With no key in cfg the client falls
// back to OPENAI_API_KEY and fails when that is empty too.
func NewModel(cfg Config) (*openai.LLM, error) {
	opts := []openai.Option{openai.WithModel(cfg.Model)}
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	return openai.New(opts...)
}
