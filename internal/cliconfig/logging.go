package cliconfig

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger returns a console logger writing to w at the named level.
func Logger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
