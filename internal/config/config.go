// Package config holds the server-level settings that do not belong to a
// single backing service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds HTTP and game tuning configuration
type Server struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	SpawnMinInterval time.Duration `env:"SPAWN_MIN_INTERVAL" envDefault:"3m"`
	SpawnMaxInterval time.Duration `env:"SPAWN_MAX_INTERVAL" envDefault:"8m"`
	CatchWindow      time.Duration `env:"CATCH_WINDOW" envDefault:"30s"`
	LeaderboardSize  int           `env:"LEADERBOARD_SIZE" envDefault:"10"`
	FeedSize         int           `env:"FEED_SIZE" envDefault:"50"`
	AllowedOrigins   []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfigFromEnv loads server configuration from environment variables
func LoadConfigFromEnv() (*Server, error) {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the coordinator cannot run with
func (c *Server) Validate() error {
	if c.SpawnMinInterval <= 0 {
		return fmt.Errorf("SPAWN_MIN_INTERVAL must be positive, got %s", c.SpawnMinInterval)
	}
	if c.SpawnMaxInterval < c.SpawnMinInterval {
		return fmt.Errorf("SPAWN_MAX_INTERVAL %s is below SPAWN_MIN_INTERVAL %s", c.SpawnMaxInterval, c.SpawnMinInterval)
	}
	if c.CatchWindow <= 0 {
		return fmt.Errorf("CATCH_WINDOW must be positive, got %s", c.CatchWindow)
	}
	if c.LeaderboardSize <= 0 || c.FeedSize <= 0 {
		return fmt.Errorf("LEADERBOARD_SIZE and FEED_SIZE must be positive")
	}
	return nil
}
