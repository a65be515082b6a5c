package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/spidervirus/Snake-Game/game/types"
	"github.com/spidervirus/Snake-Game/storage"
)

// Frontend names accepted by SNAKE_UI.
const (
	UIRaylib   = "raylib"
	UITerminal = "terminal"
)

// Config holds the settings the game starts with.
type Config struct {
	HighScoreFile string           // Path of the high-score JSON file
	Difficulty    types.Difficulty // Preselected difficulty in the menu
	Seed          uint64           // RNG seed, 0 picks one from the clock
	UI            string           // Frontend: raylib or terminal
	Sound         bool             // Whether to open the audio device
	Classic       bool             // No obstacles and no power-ups
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		HighScoreFile: storage.DefaultHighScoreFile,
		Difficulty:    types.Medium,
		UI:            UIRaylib,
		Sound:         true,
	}
}

// Load reads a .env file when present, then the SNAKE_* environment.
// Malformed values keep their defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the SNAKE_* environment without touching .env files.
func FromEnv() Config {
	def := Default()
	cfg := Config{
		HighScoreFile: getEnvWithDefault("SNAKE_HIGH_SCORE_FILE", def.HighScoreFile),
		Seed:          getEnvAsUint("SNAKE_SEED", def.Seed),
		Sound:         getEnvAsBool("SNAKE_SOUND", def.Sound),
		Classic:       getEnvAsBool("SNAKE_CLASSIC", def.Classic),
	}

	cfg.Difficulty = def.Difficulty
	if v, ok := os.LookupEnv("SNAKE_DIFFICULTY"); ok {
		d, err := types.ParseDifficulty(v)
		if err != nil {
			log.Printf("[CONFIG] [WARN] SNAKE_DIFFICULTY: %v, using %s", err, def.Difficulty)
		} else {
			cfg.Difficulty = d
		}
	}

	cfg.UI = def.UI
	if v, ok := os.LookupEnv("SNAKE_UI"); ok {
		ui, err := ParseUI(v)
		if err != nil {
			log.Printf("[CONFIG] [WARN] SNAKE_UI: %v, using %s", err, def.UI)
		} else {
			cfg.UI = ui
		}
	}
	return cfg
}

// ParseUI normalises a frontend name.
func ParseUI(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case UIRaylib, UITerminal:
		return v, nil
	case "tui", "term", "tcell":
		return UITerminal, nil
	}
	return "", errors.Errorf("unknown frontend %q, want %s or %s", s, UIRaylib, UITerminal)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		log.Printf("[CONFIG] [WARN] %s must be a non-negative integer: %v", key, err)
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		log.Printf("[CONFIG] [WARN] %s must be a boolean: %v", key, err)
		return defaultValue
	}
	return b
}
