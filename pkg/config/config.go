package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	pkgvalidator "github.com/lethanhdat/meeting-extractor/pkg/validator"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Groq   GroqConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"3000"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development staging production"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	StaticDir       string   `envconfig:"STATIC_DIR" default:"web/static"`
}

// GroqConfig holds configuration for the upstream Groq API
type GroqConfig struct {
	APIKey  string        `envconfig:"GROQ_API_KEY" validate:"required"`
	BaseURL string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string        `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
	Timeout time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
	// MaxRetries enables bounded retry on transient transport failures.
	// The default of 0 keeps the observed single-attempt behavior.
	MaxRetries int `envconfig:"GROQ_MAX_RETRIES" default:"0" validate:"gte=0,lte=5"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := pkgvalidator.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether verbose error details must be suppressed.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
