// Package logging configures the process-wide zerolog logger and hands out
// component-scoped children of it.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "STRETCHY_LOG_LEVEL"

// Init installs a console logger on w as the global logger. level is used
// unless EnvLevel is set.
func Init(w io.Writer, level string) {
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	zerolog.SetGlobalLevel(ParseLevel(level))
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !terminal(w)}
	log.Logger = zerolog.New(cw).With().Timestamp().Logger()
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// New returns the global logger tagged with component.
func New(component string) zerolog.Logger {
	if component == "" {
		return log.Logger
	}
	return log.With().Str("component", component).Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
