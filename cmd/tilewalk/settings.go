package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/session"
)

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig applies the global flags on top of the loaded configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagMapsDir != "" {
		cfg.Maps.Dir = flagMapsDir
	}
	return cfg, cfg.Validate()
}

// mapLoader returns the loader for the configured maps directory.
func mapLoader(cfg config.Config) (*maps.Loader, error) {
	dir, err := config.ExpandHome(cfg.Maps.Dir)
	if err != nil {
		return nil, err
	}
	return maps.NewLoader(dir), nil
}

// openLog returns a file logger when --log is set, otherwise a logger
// that discards. The TUI owns the terminal, so nothing logs to stderr.
func openLog() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilewalk",
	})
	return logger, func() { f.Close() }, nil
}

// currentUser names the local player for checkpoints.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return session.DefaultUser
}
