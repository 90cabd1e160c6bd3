package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lynxmind/task-portal/internal/config"
)

func init() {
	zerolog.TimestampFieldName = "timestamp"
}

// New builds the process logger. Local runs get a human-readable console
// writer; other environments log JSON.
func New(env string) (zerolog.Logger, error) {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, out io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	w := out
	switch env {
	case config.EnvDev:
		level = zerolog.DebugLevel
	case config.EnvProd:
		level = zerolog.InfoLevel
	case config.EnvLocal:
		level = zerolog.DebugLevel

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	default:
		return zerolog.Nop(), fmt.Errorf("unknown env: %s", env)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger(), nil
}
