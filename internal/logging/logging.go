package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"orderdeck/internal/config"
)

// New opens the operational log described by cfg. The TUI owns the terminal
// while running, so everything goes to a file; the returned closer must be
// deferred by the caller.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parsing log level: %w", err)
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := zerolog.New(file).
		Level(level).
		With().
		Timestamp().
		Str("service", "orderdeck").
		Logger()

	return logger, file, nil
}
