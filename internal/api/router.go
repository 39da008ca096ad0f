package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"expert-chat/internal/config"
	"expert-chat/internal/stats"
)

//go:embed frontend/*.html
var frontendFS embed.FS

func SetupRouter(cfg *config.Config, advisor Answerer, counter *stats.Counter, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	r.SetHTMLTemplate(template.Must(template.ParseFS(frontendFS, "frontend/*.html")))

	subpath := cfg.Server.Subpath // "" or "/something", never a trailing slash

	// The page itself
	if subpath == "" {
		r.GET("/", IndexHandler(cfg))
	} else {
		r.GET(subpath, IndexHandler(cfg))
		r.GET(subpath+"/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, subpath)
		})
	}

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))
		group.GET("/personas", personasHandler)

		// Question submission: HTML form and JSON
		group.POST("/ask", AskFormHandler(cfg, advisor, counter, log))
		group.POST("/api/ask", AskJSONHandler(advisor, counter, log))

		group.GET("/stats", StatsHandler(counter))
		group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	return r
}
