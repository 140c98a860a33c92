// Package logger configures the process wide zerolog logger for the CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gopkg.microglot.org/functional.go/maybe"
)

var levels = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
	"fatal": zerolog.FatalLevel,
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// give Nothing.
func ParseLevel(name string) maybe.Maybe[zerolog.Level] {
	level, ok := levels[strings.ToLower(strings.TrimSpace(name))]
	return maybe.FromOk(level, ok)
}

// Configure installs a console logger writing to out. The level comes from
// level when it names a known level, then from the LOG_LEVEL environment
// variable, and is info otherwise.
func Configure(out io.Writer, level string, lookupEnv func(string) (string, bool)) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	envValue, envOk := lookupEnv("LOG_LEVEL")
	envLevel := maybe.Chain(maybe.FromOk(envValue, envOk), ParseLevel)
	zerolog.SetGlobalLevel(ParseLevel(level).Alt(envLevel).GetOrElse(zerolog.InfoLevel))

	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = noColor
		w.TimeFormat = "15:04:05.999 |"
	})
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return log.Logger
}
