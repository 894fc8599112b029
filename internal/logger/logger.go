// Package logger configures the application's zerolog output.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New constructs a JSON logger for the given role label (e.g. "api").
// Output goes to stdout with a timestamp on every entry.
func New(role string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()
}
