package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"konane/game"
	"konane/searcher"
)

// Mode selects what the command-line runner does.
const (
	ModeMatch      = "match"
	ModeExperiment = "experiment"
)

// Config drives the command-line runner. Zero values fall back to the
// defaults below.
type Config struct {
	Mode          string `yaml:"mode"`
	BoardSize     int    `yaml:"board_size"`
	BlackDepth    int    `yaml:"black_depth"`
	WhiteDepth    int    `yaml:"white_depth"`
	TableCapacity int    `yaml:"table_capacity"`
	Games         int    `yaml:"games"`
	ExportDir     string `yaml:"export_dir"`
	MetricsDir    string `yaml:"metrics_dir"`
}

func Default() Config {
	return Config{
		Mode:       ModeMatch,
		BoardSize:  8,
		BlackDepth: 3,
		WhiteDepth: 3,
		Games:      1,
		ExportDir:  "games",
		MetricsDir: "experiments",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Mode != ModeMatch && c.Mode != ModeExperiment {
		return fmt.Errorf("invalid mode %q: must be %q or %q", c.Mode, ModeMatch, ModeExperiment)
	}
	if c.BoardSize < game.MinBoardSize || c.BoardSize > game.MaxBoardSize || c.BoardSize%2 != 0 {
		return fmt.Errorf("invalid board_size %d: must be even and between %d and %d", c.BoardSize, game.MinBoardSize, game.MaxBoardSize)
	}
	if c.BlackDepth < 1 || c.WhiteDepth < 1 ||
		c.BlackDepth > searcher.MaxSearchDepth || c.WhiteDepth > searcher.MaxSearchDepth {
		return fmt.Errorf("search depths must be between 1 and %d", searcher.MaxSearchDepth)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1")
	}
	return nil
}
