package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

const defaultModel = "gpt-4o-mini"

// Config is the startup configuration, built once in main and passed by
// value into the components that need it.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Load reads configuration from the process environment, after loading an
// optional local .env file. A missing API key is a startup error: the
// application must refuse to open its window without one.
func Load() (*Config, error) {
	// Best effort; running without a .env file is fine.
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("no OpenAI API key found; please set OPENAI_API_KEY in your environment or .env file")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	}, nil
}
