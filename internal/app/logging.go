package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the run logger. Terminal front-ends own stdout and stderr,
// so without -log-file their logs are discarded. The returned close func
// releases the log file, if any.
func NewLogger(cfg *Config) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	case cfg.UI == UITerminal || cfg.UI == UIPlain:
		w = io.Discard
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "ising",
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}
