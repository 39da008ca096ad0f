package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"expert-chat/internal/chat"
	"expert-chat/internal/config"
	"expert-chat/internal/metrics"
	"expert-chat/internal/persona"
	"expert-chat/internal/stats"
)

// Answerer produces the model's reply for one question.
type Answerer interface {
	Ask(ctx context.Context, p persona.Persona, question string) (string, error)
}

// GET /
func IndexHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", pageData(cfg, persona.Default(), "", nil))
	}
}

// POST /ask (form fields persona, question)
func AskFormHandler(cfg *config.Config, advisor Answerer, counter *stats.Counter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := persona.Persona(c.PostForm("persona"))
		if p == "" {
			p = persona.Default()
		}
		question := c.PostForm("question")

		ex := chat.NewExchange(p, question)
		resolve(c, ex, advisor, counter, requestLogger(c, log))

		c.HTML(http.StatusOK, "index.html", pageData(cfg, p, question, ex))
	}
}

// POST /api/ask
func AskJSONHandler(advisor Answerer, counter *stats.Counter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Persona  string `json:"persona"`
			Question string `json:"question"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		p := persona.Persona(req.Persona)
		if p == "" {
			p = persona.Default()
		}

		ex := chat.NewExchange(p, req.Question)
		resolve(c, ex, advisor, counter, requestLogger(c, log))

		switch {
		case ex.Warning != "":
			c.JSON(http.StatusBadRequest, gin.H{"warning": ex.Warning})
		case !ex.HasAnswer():
			c.JSON(http.StatusBadGateway, gin.H{"error": ex.Errors[0], "hint": chat.ErrorHint})
		default:
			c.JSON(http.StatusOK, gin.H{
				"persona":  ex.Persona,
				"question": ex.Question,
				"answer":   ex.Answer,
			})
		}
	}
}

// resolve runs the blank check and, when it passes, the single model call.
// Failures end up on the exchange, never as a handler error.
func resolve(c *gin.Context, ex *chat.Exchange, advisor Answerer, counter *stats.Counter, log *zap.Logger) {
	known := ex.Persona.Known()
	if ex.Blank() {
		ex.Reject()
		metrics.RecordAsk(ex.Persona.String(), known, metrics.OutcomeEmpty)
		return
	}

	ctx := c.Request.Context()
	if err := counter.Incr(ctx, ex.Persona); err != nil && !errors.Is(err, stats.ErrDisabled) {
		log.Warn("failed to count submission", zap.Error(err))
	}

	answer, err := advisor.Ask(ctx, ex.Persona, ex.Question)
	if err != nil {
		log.Error("chat completion failed",
			zap.String("persona", ex.Persona.String()),
			zap.Error(err),
		)
		ex.Fail(err)
		metrics.RecordAsk(ex.Persona.String(), known, metrics.OutcomeError)
		return
	}
	ex.Succeed(answer)
	metrics.RecordAsk(ex.Persona.String(), known, metrics.OutcomeSuccess)
}

func pageData(cfg *config.Config, selected persona.Persona, question string, ex *chat.Exchange) gin.H {
	return gin.H{
		"subpath":  cfg.Server.Subpath,
		"personas": persona.All(),
		"selected": selected,
		"question": question,
		"exchange": ex,
	}
}
