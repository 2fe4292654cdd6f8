// Package config loads vouchbot settings from the process environment, with
// an optional .env overlay for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/grandx/vouchbot/internal/common"
)

// Config holds runtime settings for the bot.
//
// Fields:
//   - Token: Discord bot token used to open the gateway session.
//   - LogChannelID: channel that receives a copy of every new vouch.
//   - DatabasePath: path of the SQLite file holding the vouches table.
//   - HealthAddr: bind address for the liveness HTTP endpoint.
type Config struct {
	Token        string `env:"DISCORD_TOKEN,notEmpty"`
	LogChannelID int64  `env:"LOG_CHANNEL_ID,notEmpty"`
	DatabasePath string `env:"VOUCH_DB_PATH" envDefault:"vouches.db"`
	HealthAddr   string `env:"HEALTH_ADDR" envDefault:":8080"`
}

// Load builds a Config from the environment. A missing token, or a missing
// or non-integer log channel ID, is a startup error: the caller must not
// attempt a gateway connection with a partial config.
func Load() (*Config, error) {
	// best effort; absent .env just means the environment is already set
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfigMissing, err)
	}
	return &cfg, nil
}
