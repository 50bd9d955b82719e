// internal/config/config.go
//
// Environment configuration shared by the console game and the server.
// A .env file in the working directory is loaded first when present.

package config

import (
	"errors"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every tunable read from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL"`

	WordAPIURL     string        `env:"WORD_API_URL,default=https://random-word-api.herokuapp.com/word"`
	WordAPITimeout time.Duration `env:"WORD_API_TIMEOUT,default=3s"`
	WordsFile      string        `env:"WORDS_FILE"`
	Offline        bool          `env:"OFFLINE,default=false"`

	Port         string `env:"PORT,default=5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN,default=http://localhost:5173"`
	DailySalt    string `env:"DAILY_SALT,default=hangman"`

	GameTTL  time.Duration `env:"GAME_TTL,default=1h"`
	MaxGames int           `env:"MAX_GAMES,default=10000"`

	// NoColor follows the no-color.org convention: any non-empty value.
	NoColor string `env:"NO_COLOR"`
}

// Load reads .env (if any) and decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv decodes the current environment without touching .env files.
func FromEnv() (*Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	return &c, nil
}

// Level parses LogLevel, falling back to def when it is not a zerolog level.
func (c *Config) Level(def zerolog.Level) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		return lvl
	}
	return def
}

// ColorDisabled reports whether NO_COLOR is set to anything.
func (c *Config) ColorDisabled() bool { return c.NoColor != "" }
