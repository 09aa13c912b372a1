// Package logger holds the process-wide zap logger. It defaults to a no-op
// logger so packages can log unconditionally before Init runs (and in tests).
package logger

import (
	"os"

	"go.uber.org/zap"
)

var Log = zap.NewNop()

// Init replaces the no-op default with a production logger. LOG_LEVEL
// overrides the level when it parses; otherwise info is kept.
func Init() {
	cfg := zap.NewProductionConfig()
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if level, err := zap.ParseAtomicLevel(raw); err == nil {
			cfg.Level = level
		}
	}

	l, err := cfg.Build()
	if err != nil {
		return
	}
	Log = l
}
