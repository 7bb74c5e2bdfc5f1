package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	JWT        JWTConfig
	OAuth      OAuthConfig      `mapstructure:"oauth"`
	Generation GenerationConfig `mapstructure:"generation"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type OAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
	FrontendURL  string `mapstructure:"frontend_url"`
}

// GenerationConfig carries credentials for the text-completion upstream.
// BackupAPIKey is tried when the primary key fails, before any user-facing
// fallback message is returned.
type GenerationConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	APIKey         string `mapstructure:"api_key"`
	BackupAPIKey   string `mapstructure:"backup_api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CHAINQUEST")
	v.AutomaticEnv()

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// OAuth
	v.BindEnv("oauth.client_id", "GOOGLE_CLIENT_ID")
	v.BindEnv("oauth.client_secret", "GOOGLE_CLIENT_SECRET")
	v.BindEnv("oauth.redirect_uri", "OAUTH_REDIRECT_URI")
	v.BindEnv("oauth.frontend_url", "FRONTEND_URL")

	// Generation
	v.BindEnv("generation.base_url", "GEMINI_BASE_URL")
	v.BindEnv("generation.model", "GEMINI_MODEL")
	v.BindEnv("generation.api_key", "GEMINI_API_KEY")
	v.BindEnv("generation.backup_api_key", "GEMINI_API_KEY_BACKUP")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.Generation.Model == "" {
		cfg.Generation.Model = "gemini-2.0-flash-lite"
	}
	if cfg.Generation.BaseURL == "" {
		cfg.Generation.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Generation.TimeoutSeconds <= 0 {
		cfg.Generation.TimeoutSeconds = 30
	}

	return &cfg, nil
}
