package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/delvegame/delve/internal/config"
	"github.com/delvegame/delve/internal/data"
	"github.com/delvegame/delve/internal/game"
	"github.com/delvegame/delve/internal/scripting"
	"github.com/delvegame/delve/internal/spawn"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              DELVE  v0.1.0                \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      a turn-based dungeon crawl           \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Main game logic ────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/delve.toml"
	if p := os.Getenv("DELVE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger. The terminal belongs to the game screen, so logs go
	// to a file.
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	// 3. Load content tables
	printSection("Content")

	creatureTable, err := data.LoadCreatureTable(filepath.Join(cfg.Content.DataDir, "creatures.yaml"))
	if err != nil {
		return fmt.Errorf("load creature table: %w", err)
	}
	printStat("Creature templates", creatureTable.Count())

	itemTable, err := data.LoadItemTable(filepath.Join(cfg.Content.DataDir, "items.yaml"))
	if err != nil {
		return fmt.Errorf("load item table: %w", err)
	}
	printStat("Item templates", itemTable.Count())

	trapTable, err := data.LoadTrapTable(filepath.Join(cfg.Content.DataDir, "traps.yaml"))
	if err != nil {
		return fmt.Errorf("load trap table: %w", err)
	}
	printStat("Trap templates", trapTable.Count())

	themeTable, err := data.LoadThemeTable(filepath.Join(cfg.Content.DataDir, "themes.yaml"))
	if err != nil {
		return fmt.Errorf("load theme table: %w", err)
	}
	printStat("Dungeon themes", themeTable.Count())

	// 4. Lua scripting engine for the tunable formulas
	luaEngine, err := scripting.NewEngine(cfg.Content.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("Lua scripts loaded")
	fmt.Println()

	// 5. Build the session and take over the terminal
	factory := spawn.NewFactory(creatureTable, itemTable, trapTable, log)
	sess := game.NewSession(cfg, factory, themeTable, luaEngine, log)

	fe, err := newTcellFrontend(cfg.Game.LogLines)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer fe.Close()

	return sess.Run(fe)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	return zapCfg.Build()
}
