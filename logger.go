package prettyprint

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs a tinted stderr handler as the default slog logger.
// Warnings are shown by default, debug records only when debug is set.
// Setting NO_COLOR disables ANSI colours.
func InitLogger(debug bool) {
	slog.SetDefault(slog.New(newLogHandler(os.Stderr, debug, os.Getenv("NO_COLOR") != "")))
}

func newLogHandler(w io.Writer, debug, noColor bool) slog.Handler {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	})
}
