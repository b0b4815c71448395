package cli

import (
	"time"

	"github.com/rs/zerolog"
)

func newLogger(c *commonFlags) zerolog.Logger {
	level := zerolog.WarnLevel
	if c.Verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !resolveColor(c.Color, stderr),
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
