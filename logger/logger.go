// Package logger builds the process-wide zerolog logger used across the
// server. Handlers and middleware receive it by value; tests use Nop.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New constructs a JSON logger writing to stdout, tagged with a role label
// so multiple processes sharing a log stream can be told apart.
func New(role string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
