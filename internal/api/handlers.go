package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expert-chat/internal/config"
	"expert-chat/internal/persona"
	"expert-chat/internal/stats"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"llm": gin.H{
				"model":       cfg.OpenAI.Model,
				"temperature": cfg.OpenAI.Temperature,
				"api_key_set": cfg.APIKeySet(),
			},
		})
	}
}

// GET /personas
func personasHandler(c *gin.Context) {
	all := persona.All()
	list := make([]map[string]string, len(all))
	for i, p := range all {
		list[i] = map[string]string{
			"name":          p.String(),
			"system_prompt": p.SystemPrompt(),
		}
	}
	c.JSON(http.StatusOK, list)
}

// StatsHandler returns per-persona submission counts kept in redis.
func StatsHandler(counter *stats.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !counter.Enabled() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats disabled"})
			return
		}
		counts, err := counter.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"asks": counts})
	}
}
