package config

import (
	"os"
	"strings"
)

// Config carries everything the process reads from the environment.
// It is loaded once in main and passed down explicitly.
type Config struct {
	Port     string
	Provider string // provider identifier, lowercased (groq, openai, openrouter, together)
	Model    string // optional model override, empty means provider default
	APIKey   string // value of <PROVIDER>_API_KEY
	LogLevel string
}

func Load() *Config {
	provider := strings.ToLower(getEnv("PROVIDER", "groq"))
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Provider: provider,
		Model:    strings.TrimSpace(os.Getenv("MODEL")),
		APIKey:   strings.TrimSpace(os.Getenv(strings.ToUpper(provider) + "_API_KEY")),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
