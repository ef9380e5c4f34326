package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger for dev environments and JSON otherwise.
func NewLogger(env string) zerolog.Logger {
	if env == "dev" || env == "development" || env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
