// Package logging configures the CLI logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w. Verbose enables debug level.
func New(verbose bool, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
