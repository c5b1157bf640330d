package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Content ContentConfig `toml:"content"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	GridWidth   int   `toml:"grid_width"`
	GridHeight  int   `toml:"grid_height"`
	FOVRadius   int   `toml:"fov_radius"`
	FrameRateMs int   `toml:"frame_rate_ms"` // wall-clock milliseconds per frame
	LogLines    int   `toml:"log_lines"`     // message log rows on screen
	Seed        int64 `toml:"seed"`          // 0 means seed from the clock
}

// FrameInterval is the frame pacing as a duration.
func (g GameConfig) FrameInterval() time.Duration {
	return time.Duration(g.FrameRateMs) * time.Millisecond
}

type ContentConfig struct {
	DataDir    string `toml:"data_dir"`
	ScriptsDir string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // the terminal is the game screen, so logs land here
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.GridWidth < 16 || cfg.Game.GridHeight < 16 {
		return nil, fmt.Errorf("config %s: grid %dx%d too small, need at least 16x16",
			path, cfg.Game.GridWidth, cfg.Game.GridHeight)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration used when no file is given.
func Defaults() *Config { return defaults() }

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			GridWidth:   64,
			GridHeight:  36,
			FOVRadius:   8,
			FrameRateMs: 33,
			LogLines:    5,
		},
		Content: ContentConfig{
			DataDir:    "data",
			ScriptsDir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "delve.log",
		},
	}
}
