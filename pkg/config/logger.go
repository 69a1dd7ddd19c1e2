package config

import (
	"strings"

	"github.com/maxbolgarin/logze/v2"
)

// Init configures the global console logger for the configured level.
func (c LogConfig) Init() {
	cfg := logze.C().WithConsole()
	switch strings.ToLower(c.Level) {
	case "debug":
		cfg = cfg.WithLevel(logze.LevelDebug)
	case "warn":
		cfg = cfg.WithLevel(logze.LevelWarn)
	case "error":
		cfg = cfg.WithLevel(logze.LevelError)
	default:
		cfg = cfg.WithLevel(logze.LevelInfo)
	}
	logze.Init(cfg)
}
