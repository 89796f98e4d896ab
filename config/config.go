package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":2137"`
	Debug      bool   `env:"DEBUG"`
	// Mirror logs to the local syslog daemon.
	Syslog bool `env:"SYSLOG"`

	// AES key protecting stored Steam api tokens, 16, 24 or 32 bytes.
	EncryptionKey string `env:"STEAM_ENCRYPTION_KEY"`

	// Linked accounts are kept in memory when empty.
	PostgresDsn string `env:"POSTGRES_DSN"`
	KVPath      string `env:"KV_PATH" envDefault:"kv.db"`
	// Profile cache uses redis instead of buntdb when set.
	RedisAddr       string        `env:"REDIS_ADDR"`
	ProfileCacheTTL time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"1m"`

	SteamApiUrl string `env:"STEAM_API_URL" envDefault:"https://api.steampowered.com"`
	AssetsDir   string `env:"ASSETS_DIR" envDefault:"./assets"`

	// Plugin server used by the popover client.
	PluginUrl string `env:"PLUGIN_URL" envDefault:"http://127.0.0.1:2137"`
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsValid checks the settings the plugin server cannot work without.
func (c Config) IsValid() error {
	switch len(c.EncryptionKey) {
	case 0:
		return errors.New("must have an encryption key")
	case 16, 24, 32:
	default:
		return fmt.Errorf("encryption key must be 16, 24 or 32 bytes long, got %d", len(c.EncryptionKey))
	}
	if c.ProfileCacheTTL <= 0 {
		return errors.New("profile cache ttl must be positive")
	}
	return nil
}
