// Package config loads service settings from YAML with environment
// overrides and resolves credentials from SSM Parameter Store.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"monastery-guide/internal/integrations/paramstore"
)

const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Assistant   AssistantConfig   `yaml:"assistant"`
	ImageSearch ImageSearchConfig `yaml:"image_search"`
	Chat        ChatConfig        `yaml:"chat"`
	Params      ParamsConfig      `yaml:"params"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Port            int    `yaml:"port"`
	SiteRoot        string `yaml:"site_root"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type AssistantConfig struct {
	Backend string `yaml:"backend"` // rest, sdk
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	// Empty means no timeout.
	Timeout           string `yaml:"timeout"`
	MaxQuestionLength int    `yaml:"max_question_length"`
}

type ImageSearchConfig struct {
	APIKey   string `yaml:"api_key"`
	EngineID string `yaml:"engine_id"`
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

type ChatConfig struct {
	SessionTTL    string `yaml:"session_ttl"`
	SweepInterval string `yaml:"sweep_interval"`
}

// ParamsConfig points at SSM parameters holding credentials. Parameters are
// only read when Prefix is set and the matching key is still empty.
type ParamsConfig struct {
	Prefix string `yaml:"prefix"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			SiteRoot:        "public",
			ShutdownTimeout: "10s",
		},
		Assistant: AssistantConfig{
			Backend:           BackendREST,
			Model:             "gemini-1.5-pro-latest",
			BaseURL:           "https://generativelanguage.googleapis.com",
			MaxQuestionLength: 500,
		},
		ImageSearch: ImageSearchConfig{
			Endpoint: "https://www.googleapis.com/customsearch/v1",
			Timeout:  "10s",
		},
		Chat: ChatConfig{
			SessionTTL:    "2h",
			SweepInterval: "5m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error. An
// empty path skips the file. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Assistant.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Assistant.Model = v
	}
	if v := os.Getenv("ASSISTANT_BACKEND"); v != "" {
		c.Assistant.Backend = v
	}
	if v := os.Getenv("SEARCH_API_KEY"); v != "" {
		c.ImageSearch.APIKey = v
	}
	if v := os.Getenv("SEARCH_CX"); v != "" {
		c.ImageSearch.EngineID = v
	}
	if v := os.Getenv("PARAM_PREFIX"); v != "" {
		c.Params.Prefix = v
	}
	if v := os.Getenv("SITE_ROOT"); v != "" {
		c.Server.SiteRoot = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.Port = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	switch c.Assistant.Backend {
	case BackendREST, BackendSDK:
	default:
		return fmt.Errorf("config: unknown assistant backend %q", c.Assistant.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	for name, v := range map[string]string{
		"assistant.timeout":       c.Assistant.Timeout,
		"image_search.timeout":    c.ImageSearch.Timeout,
		"chat.session_ttl":        c.Chat.SessionTTL,
		"chat.sweep_interval":     c.Chat.SweepInterval,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if _, err := parseDuration(v); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	return nil
}

// ResolveSecrets fills empty API keys from SSM under Params.Prefix.
func (c *Config) ResolveSecrets(ctx context.Context, g paramstore.Getter) error {
	prefix := strings.TrimRight(strings.TrimSpace(c.Params.Prefix), "/")
	if prefix == "" || g == nil {
		return nil
	}
	if c.Assistant.APIKey == "" {
		key, err := paramstore.Token(ctx, g, prefix+"/gemini_api_key")
		if err != nil {
			return fmt.Errorf("config: resolve assistant key: %w", err)
		}
		c.Assistant.APIKey = key
	}
	if c.ImageSearch.APIKey == "" {
		key, err := paramstore.Token(ctx, g, prefix+"/search_api_key")
		if err != nil {
			return fmt.Errorf("config: resolve image search key: %w", err)
		}
		c.ImageSearch.APIKey = key
	}
	return nil
}

func (c AssistantConfig) TimeoutDuration() time.Duration {
	d, _ := parseDuration(c.Timeout)
	return d
}

func (c ImageSearchConfig) TimeoutDuration() time.Duration {
	d, _ := parseDuration(c.Timeout)
	return d
}

func (c ChatConfig) SessionTTLDuration() time.Duration {
	d, _ := parseDuration(c.SessionTTL)
	return d
}

func (c ChatConfig) SweepIntervalDuration() time.Duration {
	d, _ := parseDuration(c.SweepInterval)
	return d
}

func (c ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := parseDuration(c.ShutdownTimeout)
	return d
}

func (c ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}
