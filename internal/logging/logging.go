// Package logging wires a single zerolog.Logger configuration shared by
// cmd/clprove and cmd/clbench. Package cl never imports this: it is a
// library and logs nothing on its own.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-writer zerolog.Logger at the given level name
// ("debug", "info", "warn", "error", or any other name zerolog.ParseLevel
// accepts); a name ParseLevel rejects falls back to info.
func New(levelName string, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if out == nil {
		out = os.Stderr
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
