package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               string
		CORSAllowedOrigins []string
	}
	Gemini struct {
		APIKey  string
		BaseURL string
		Model   string
	}
	Exa struct {
		APIKey    string
		BaseURL   string
		UserAgent string
	}
	// UpstreamTimeout bounds every outbound call to Gemini or Exa.
	UpstreamTimeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("server.cors_allowed_origins", "*")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.model", "gemini-2.5-flash-preview-09-2025")
	viper.SetDefault("exa.base_url", "https://api.exa.ai")
	viper.SetDefault("exa.user_agent", "JD-Roadmap-Demo/1.0.0")
	viper.SetDefault("upstream.timeout", "30s")

	bindings := map[string]string{
		"server.port":                 "PORT",
		"server.cors_allowed_origins": "CORS_ALLOWED_ORIGINS",
		"gemini.api_key":              "GEMINI_API_KEY",
		"gemini.base_url":             "GEMINI_BASE_URL",
		"gemini.model":                "GEMINI_MODEL",
		"exa.api_key":                 "EXA_API_KEY",
		"exa.base_url":                "EXA_BASE_URL",
		"upstream.timeout":            "UPSTREAM_TIMEOUT",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Server.CORSAllowedOrigins = splitList(viper.GetString("server.cors_allowed_origins"))
	config.Gemini.APIKey = viper.GetString("gemini.api_key")
	config.Gemini.BaseURL = strings.TrimRight(viper.GetString("gemini.base_url"), "/")
	config.Gemini.Model = viper.GetString("gemini.model")
	config.Exa.APIKey = viper.GetString("exa.api_key")
	config.Exa.BaseURL = strings.TrimRight(viper.GetString("exa.base_url"), "/")
	config.Exa.UserAgent = viper.GetString("exa.user_agent")

	timeout, err := time.ParseDuration(viper.GetString("upstream.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream timeout: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("upstream timeout must be positive, got %s", timeout)
	}
	config.UpstreamTimeout = timeout

	return &config, nil
}

func (c *Config) ValidateGemini() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

func (c *Config) ValidateExa() error {
	if c.Exa.APIKey == "" {
		return fmt.Errorf("EXA_API_KEY is required")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
