package config

import (
	"log/slog"
	"os"
)

// SetupLog installs a text slog logger on stderr as the default logger and
// returns its level so callers can adjust it at runtime.
func SetupLog(cfg *Config) *slog.LevelVar {
	var lv slog.LevelVar
	lv.Set(cfg.SlogLevel())
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &lv})))
	return &lv
}
