package config

import (
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

// Config holds service settings read from the environment. Clerk settings
// (CLERK_JWKS_URL, CLERK_ISSUER) are read directly by the auth package.
type Config struct {
	Port   string
	Vision VisionConfig
}

type VisionConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 300
)

func LoadConfig() (*Config, error) {
	maxTokens := defaultMaxTokens
	if v := os.Getenv("OPENAI_MAX_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxTokens = parsed
		}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		Port: port,
		Vision: VisionConfig{
			APIKey:    os.Getenv("OPENAI_API_KEY"),
			Model:     model,
			MaxTokens: maxTokens,
		},
	}

	return cfg, nil
}
