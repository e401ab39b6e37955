package gamebox

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger writes human-readable diagnostics to stderr. The library never logs
// on the hot path; only extended-attribute notices, screenshot failures, and
// loop lifecycle events go through it.
var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.TimeOnly,
}).With().Timestamp().Logger()

// SetLogLevel adjusts the library's diagnostic verbosity. The default level
// is info, which includes the "added attribute" teaching notices; pass
// zerolog.WarnLevel to silence those.
func SetLogLevel(level zerolog.Level) {
	logger = logger.Level(level)
}
