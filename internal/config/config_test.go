package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_TEMPERATURE", "OPENAI_BASE_URL",
		"SERVER_HOST", "SERVER_PORT", "SERVER_SUBPATH", "REDIS_ADDR",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	ResetConfigForTest()
	clearEnv(t)
	tmp := filepath.Join(t.TempDir(), "config.json")
	raw := []byte(`{
		"server": {
			"host": "localhost",
			"port": 9090,
			"subpath": "/experts/"
		},
		"openai": {
			"model": "gpt-4o-mini",
			"temperature": 0.3
		},
		"redis": {
			"addr": "localhost:6379",
			"db": 2
		}
	}`)
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 9090 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.Subpath != "/experts" {
		t.Errorf("expected normalized subpath /experts, got %q", cfg.Server.Subpath)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" || cfg.OpenAI.Temperature != 0.3 {
		t.Errorf("openai config not loaded: %+v", cfg.OpenAI)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("redis config not loaded: %+v", cfg.Redis)
	}
	if GetConfig() != cfg {
		t.Errorf("GetConfig should return the loaded config")
	}
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	ResetConfigForTest()
	clearEnv(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Errorf("expected default model, got %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.7 {
		t.Errorf("expected default temperature 0.7, got %v", cfg.OpenAI.Temperature)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.APIKeySet() {
		t.Errorf("API key should not be set")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	ResetConfigForTest()
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("SERVER_PORT", "3000")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-test" || !cfg.APIKeySet() {
		t.Errorf("api key not read from env")
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model not read from env: %q", cfg.OpenAI.Model)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port not read from env: %d", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfigForTest()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "no_such_config.json"))
	if err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	ResetConfigForTest()
	tmp := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(tmp, []byte(`{this is not json}`), 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}

	_, err := LoadConfig(tmp)
	if err == nil {
		t.Errorf("expected error for malformed JSON")
	}
}

func TestLoadConfig_TemperatureOutOfRange(t *testing.T) {
	ResetConfigForTest()
	clearEnv(t)
	t.Setenv("OPENAI_TEMPERATURE", "3.5")

	_, err := LoadConfig("")
	if err == nil {
		t.Errorf("expected validation error for temperature 3.5")
	}
}

func TestNormalizeSubpath(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"/":        "",
		"experts":  "/experts",
		"/experts": "/experts",
		"/a/b/":    "/a/b",
	}
	for in, want := range cases {
		if got := normalizeSubpath(in); got != want {
			t.Errorf("normalizeSubpath(%q) = %q, want %q", in, got, want)
		}
	}
}
