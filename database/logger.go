package database

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide structured logger: JSON lines to
// stdout with timestamps.
func NewLogger() zerolog.Logger {
	return NewLoggerTo(os.Stdout)
}

func NewLoggerTo(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
