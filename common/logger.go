package common

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ScriptName identifies this probe in log output.
const ScriptName = "check_rabbitmq_queues"

// DebugEnabled reports whether CHECK_QUEUES_DEBUG is set to anything
// non-empty. Debug mode adds a stack trace on unhandled failures and
// lowers the log level, without changing the status line or exit code.
func DebugEnabled() bool {
	return os.Getenv("CHECK_QUEUES_DEBUG") != ""
}

// InitZerolog configures zerolog for the probe. Everything goes to stderr
// through a console writer: stdout is reserved for the single status line
// the monitoring supervisor parses.
func InitZerolog() {
	lvl := os.Getenv("CHECK_QUEUES_LOGLEVEL")
	if lvl == "" {
		lvl = "error"
	}
	if DebugEnabled() {
		lvl = "debug"
	}

	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + fmt.Sprintf("%d", line)
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	noColor := os.Getenv("CHECK_QUEUES_NOCOLOR") == "true" || os.Getenv("CHECK_QUEUES_NOCOLOR") == "1"

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	log.Logger = zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("component", ScriptName).
		Logger()
}
