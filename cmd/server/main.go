package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"expert-chat/internal/api"
	"expert-chat/internal/config"
	"expert-chat/internal/llm"
	"expert-chat/internal/logger"
	redisdb "expert-chat/internal/redis"
	"expert-chat/internal/stats"
)

func main() {
	configPath := flag.String("config", "", "optional config file (json, yaml or toml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if !cfg.APIKeySet() {
		log.Warn("OPENAI_API_KEY is not set; questions will fail until it is configured")
	}
	advisor := llm.NewAdvisor(llm.FromAppConfig(cfg.OpenAI), log)

	rdb := redisdb.NewClient(cfg)
	if rdb != nil {
		defer rdb.Close()
		log.Info("submission stats enabled", zap.String("redis", cfg.Redis.Addr))
	}
	counter := stats.New(rdb)

	r := api.SetupRouter(cfg, advisor, counter, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		zap.String("addr", addr),
		zap.String("subpath", cfg.Server.Subpath),
		zap.String("model", cfg.OpenAI.Model),
	)
	if err := r.Run(addr); err != nil {
		log.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
