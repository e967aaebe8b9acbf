package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// App holds runtime settings for the game binary.
type App struct {
	StartingGold  int `yaml:"starting_gold"`
	StartingLives int `yaml:"starting_lives"`

	// Пустой путь: встроенные определения башен.
	TowersFile string `yaml:"towers_file"`

	// Briefing
	BriefingScript    string `yaml:"briefing_script"`
	BriefingTimeoutMs int    `yaml:"briefing_timeout_ms"`

	// Run history (sqlite). Empty disables recording.
	HistoryDB string `yaml:"history_db"`

	LogLevel      string `yaml:"log_level"`
	StartFromGame bool   `yaml:"start_from_game"`
	PprofAddr     string `yaml:"pprof_addr"`
	WindowTitle   string `yaml:"window_title"`
}

// Default returns App config with the stock economy and no optional collaborators.
func Default() App {
	return App{
		StartingGold:      StartingGold,
		StartingLives:     StartingLives,
		BriefingTimeoutMs: 250,
		HistoryDB:         "neon-defense.db",
		LogLevel:          "info",
		StartFromGame:     false,
		WindowTitle:       "Neon Defense",
	}
}

// Load loads app config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (App, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot start with.
func (c App) Validate() error {
	if c.StartingGold < 0 {
		return fmt.Errorf("starting_gold must be >= 0, got %d", c.StartingGold)
	}
	if c.StartingLives <= 0 {
		return fmt.Errorf("starting_lives must be > 0, got %d", c.StartingLives)
	}
	if c.BriefingTimeoutMs < 0 {
		return fmt.Errorf("briefing_timeout_ms must be >= 0, got %d", c.BriefingTimeoutMs)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to Info.
func (c App) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
