package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// newLogger builds the application logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the config file and applies the --difficulty preset.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, cfg.Validate()
}

// runtimeConfig collects terminal size, tick rate and seed.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultRuntimeConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// newSession loads the configuration and creates an idle session.
func newSession(logger *log.Logger) (*flappy.Session, core.RuntimeConfig, error) {
	rt := runtimeConfig()

	cfg, err := loadConfig()
	if err != nil {
		return nil, rt, err
	}

	s, err := flappy.NewSession(cfg, rt.Seed, flappy.WithLogger(logger))
	if err != nil {
		return nil, rt, err
	}

	logger.Debug("session created", "seed", rt.Seed, "tick_rate", rt.TickRate, "spawn_unit", cfg.Spawn.Unit)
	return s, rt, nil
}
