// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs to start. The three credential
// fields are required; startup fails if any is missing.
type Config struct {
	// DiscordToken authenticates the bot with the chat platform.
	DiscordToken string

	// SupabaseURL and SupabaseKey locate and authenticate the remote store.
	SupabaseURL string
	SupabaseKey string

	// HealthPort is the listen port for the liveness/metrics server.
	HealthPort int
}

// Load reads a .env file when present, then the environment. A missing
// required variable is a fatal configuration error named in the message.
func Load() (*Config, error) {
	// .env is a development convenience; deployed environments set real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		SupabaseURL:  os.Getenv("SUPABASE_URL"),
		SupabaseKey:  os.Getenv("SUPABASE_KEY"),
		HealthPort:   8080,
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_KEY is required")
	}

	if port := os.Getenv("HEALTH_PORT"); port != "" {
		if _, err := fmt.Sscanf(port, "%d", &cfg.HealthPort); err != nil {
			return nil, fmt.Errorf("HEALTH_PORT must be a number: %w", err)
		}
	}

	return cfg, nil
}
