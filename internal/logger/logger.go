// Package logger builds the zerolog loggers shared by the server, migrations and the CLI.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w with timestamps rendered in loc.
func New(w io.Writer, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }
	zerolog.TimestampFieldName = "ts"

	return zerolog.New(w).With().Timestamp().Logger()
}

// Default returns a stdout logger in UTC.
func Default() zerolog.Logger {
	return New(os.Stdout, time.UTC)
}

// Console returns a human-readable logger for the admin CLI.
func Console() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}
