package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"expert-chat/internal/metrics"
	"expert-chat/internal/persona"
)

// Advisor answers one question as one persona.
type Advisor struct {
	chain   *Chain
	model   string
	initErr error
	log     *zap.Logger
}

// NewAdvisor builds the OpenAI backed advisor. A model that cannot be created
// (usually a missing API key) does not stop the server: every Ask returns the
// construction error instead.
func NewAdvisor(cfg Config, log *zap.Logger) *Advisor {
	m, err := NewModel(cfg)
	if err != nil {
		log.Warn("chat model unavailable", zap.String("model", cfg.Model), zap.Error(err))
		return &Advisor{model: cfg.Model, initErr: fmt.Errorf("create chat model: %w", err), log: log}
	}
	return NewAdvisorWithModel(m, cfg, log)
}

// NewAdvisorWithModel uses an already constructed model.
func NewAdvisorWithModel(model llms.Model, cfg Config, log *zap.Logger) *Advisor {
	return &Advisor{
		chain: NewChain(model, cfg.Temperature),
		model: cfg.Model,
		log:   log,
	}
}

// Ask is not retried; the caller decides how to present a failure.
func (a *Advisor) Ask(ctx context.Context, p persona.Persona, question string) (string, error) {
	if a.initErr != nil {
		return "", a.initErr
	}
	start := time.Now()
	answer, err := a.chain.Invoke(ctx, p, question)
	elapsed := time.Since(start)
	metrics.LLMCallDuration.WithLabelValues(a.model).Observe(elapsed.Seconds())
	if err != nil {
		return "", err
	}
	a.log.Debug("chat completion done",
		zap.String("model", a.model),
		zap.String("persona", p.String()),
		zap.Duration("elapsed", elapsed),
		zap.Int("answer_len", len(answer)),
	)
	return answer, nil
}
