package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the console.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Platform API configuration
	PlatformBaseURL string

	// Redis configuration (session backend)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// CORS configuration
	AllowedOrigins []string
}

// LoadConfig creates a Config from environment variables or, in
// production, Docker secrets. Missing values fall back to development
// defaults outside production.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if GetEnvironment() == Production {
		loadFromSecrets(cfg)
	} else {
		loadFromEnv(cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	cfg.ServerPort = envOr("SERVER_PORT", "8080")
	cfg.ServerHost = envOr("SERVER_HOST", "0.0.0.0")
	cfg.PlatformBaseURL = envOr("PLATFORM_BASE_URL", "http://localhost:3000/api")
	cfg.RedisHost = envOr("REDIS_HOST", "localhost")
	cfg.RedisPort = envOr("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = envIntOr("REDIS_DB", 0)
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.AllowedOrigins = splitOrigins(envOr("ALLOWED_ORIGINS", "http://localhost:5173"))
}

// loadFromSecrets reads production configuration from Docker secrets,
// with environment variables as a fallback for values that are not
// secret-worthy.
func loadFromSecrets(cfg *Config) {
	cfg.ServerPort = secretOr("server_port", envOr("SERVER_PORT", "8080"))
	cfg.ServerHost = secretOr("server_host", envOr("SERVER_HOST", "0.0.0.0"))
	cfg.PlatformBaseURL = secretOr("platform_base_url", os.Getenv("PLATFORM_BASE_URL"))
	cfg.RedisHost = secretOr("redis_host", envOr("REDIS_HOST", "localhost"))
	cfg.RedisPort = secretOr("redis_port", envOr("REDIS_PORT", "6379"))
	cfg.RedisPassword = secretOr("redis_password", os.Getenv("REDIS_PASSWORD"))
	cfg.RedisDB = 0
	cfg.RedisURL = secretOr("redis_url", os.Getenv("REDIS_URL"))
	cfg.AllowedOrigins = splitOrigins(envOr("ALLOWED_ORIGINS", ""))
}

func validate(cfg *Config) error {
	if cfg.PlatformBaseURL == "" {
		return fmt.Errorf("platform base URL is required")
	}
	if !strings.HasPrefix(cfg.PlatformBaseURL, "http://") && !strings.HasPrefix(cfg.PlatformBaseURL, "https://") {
		return fmt.Errorf("platform base URL must be an http(s) URL, got %q", cfg.PlatformBaseURL)
	}
	if cfg.ServerPort == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("server port must be numeric, got %q", cfg.ServerPort)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// secretOr reads a Docker secret from the secrets directory, falling back
// to the given value when the secret file is absent.
func secretOr(name, fallback string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return fallback
}
