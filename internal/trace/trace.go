// Package trace provides an optional execution trace. Tracing is off unless
// the SMALLSH_TRACE environment variable names a writable file path; the
// shell's interactive surface stays flag-free either way.
package trace

import (
	"os"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

func init() {
	path := os.Getenv("SMALLSH_TRACE")
	if path == "" {
		return
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if l, err := cfg.Build(); err == nil {
		logger = l
	}
}

// L returns the process-wide trace logger.
func L() *zap.Logger {
	return logger
}
