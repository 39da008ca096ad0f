package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	BaseURL     string  `mapstructure:"base_url"`
}

type Config struct {
	Server struct {
		Host    string `mapstructure:"host"`
		Port    int    `mapstructure:"port"`
		Subpath string `mapstructure:"subpath"`
	} `mapstructure:"server"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Redis  struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
}

var defaults = map[string]interface{}{
	"server.host":        "0.0.0.0",
	"server.port":        8080,
	"server.subpath":     "",
	"openai.api_key":     "",
	"openai.model":       "gpt-3.5-turbo",
	"openai.temperature": 0.7,
	"openai.base_url":    "",
	"redis.addr":         "",
	"redis.password":     "",
	"redis.db":           0,
	"logging.level":      "info",
	"logging.format":     "console",
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig builds the configuration once from defaults, an optional config
// file and the environment (a local .env is loaded first when present).
// An empty path means no config file.
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		for key, val := range defaults {
			v.SetDefault(key, val)
		}
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				cfgErr = fmt.Errorf("failed to read config file: %w", err)
				return
			}
		}

		var c Config
		if err := v.Unmarshal(&c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		c.Server.Subpath = normalizeSubpath(c.Server.Subpath)
		if err := c.Validate(); err != nil {
			cfgErr = err
			return
		}
		cfg = &c
	})
	return cfg, cfgErr
}

// Validate checks ranges only. A missing API key is reported per request.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.OpenAI.Model == "" {
		return errors.New("openai.model must be set")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be between 0 and 2, got %v", c.OpenAI.Temperature)
	}
	return nil
}

// APIKeySet reports whether a credential is configured, without exposing it.
func (c *Config) APIKeySet() bool {
	return c.OpenAI.APIKey != ""
}

// "/" and "" both mean root; otherwise a leading slash and no trailing one.
func normalizeSubpath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
