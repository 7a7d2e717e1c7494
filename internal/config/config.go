package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/04pril/mega-guess/internal/score"
)

type Config struct {
	ScoreFile string
	LogLevel  zerolog.Level
	Mute      bool
}

// Load reads an optional .env file, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		ScoreFile: getEnv("GUESS_SCORE_FILE", score.DefaultPath()),
		LogLevel:  zerolog.InfoLevel,
	}
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		cfg.LogLevel = lvl
	}
	if v, err := strconv.ParseBool(getEnv("GUESS_MUTE", "false")); err == nil {
		cfg.Mute = v
	}
	return cfg
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
