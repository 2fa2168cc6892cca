package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBackgroundURL is the price tag artwork used when none is configured
const DefaultBackgroundURL = "https://www.vdar.com.ar/carteles/base-carteles.jpg"

type Config struct {
	ServerPort     string
	Environment    string
	AllowedOrigins []string
	// Background artwork: http(s) URL, data: URI or asset://<key>
	BackgroundURL     string
	BackgroundTimeout time.Duration
	BackgroundEmbed   bool // inline the artwork as a data URI so browser printing shows it
	// Local asset directory (used when R2 is not configured)
	AssetDir string
	// Cloudflare R2 asset bucket
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	// Editor workspaces live in memory for this long after their last use
	SessionTTL time.Duration

	// Keys that fell back to their default value
	Defaulted []string
}

// Load reads configuration from the environment, loading a .env file first
// when one is present
func Load() *Config {
	envFileLoaded := godotenv.Load() == nil

	cfg := &Config{}
	cfg.ServerPort = cfg.getEnv("SERVER_PORT", "8080")
	cfg.Environment = cfg.getEnv("ENVIRONMENT", "development")
	cfg.AllowedOrigins = strings.Split(cfg.getEnv("ALLOWED_ORIGINS", "*"), ",")
	cfg.BackgroundURL = cfg.getEnv("BACKGROUND_URL", DefaultBackgroundURL)
	cfg.BackgroundTimeout = cfg.getEnvDuration("BACKGROUND_TIMEOUT", 15*time.Second)
	cfg.BackgroundEmbed = cfg.getEnvBool("BACKGROUND_EMBED", true)
	cfg.AssetDir = cfg.getEnv("ASSET_DIR", "static/assets")
	cfg.R2AccountID = cfg.getEnv("R2_ACCOUNT_ID", "")
	cfg.R2AccessKeyID = cfg.getEnv("R2_ACCESS_KEY_ID", "")
	cfg.R2SecretAccessKey = cfg.getEnv("R2_SECRET_ACCESS_KEY", "")
	cfg.R2BucketName = cfg.getEnv("R2_BUCKET_NAME", "")
	cfg.R2PublicURL = cfg.getEnv("R2_PUBLIC_URL", "")
	cfg.SessionTTL = cfg.getEnvDuration("SESSION_TTL", 12*time.Hour)

	if !envFileLoaded {
		cfg.Defaulted = append(cfg.Defaulted, ".env")
	}
	return cfg
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Configured reports whether every R2 credential is present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func (c *Config) getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		c.Defaulted = append(c.Defaulted, key)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		c.Defaulted = append(c.Defaulted, key)
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration accepts Go durations ("30s") or a bare number of seconds
func (c *Config) getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		c.Defaulted = append(c.Defaulted, key)
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
