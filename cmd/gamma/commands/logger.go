package commands

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"
)

// newLogger builds the CLI logger. Logs go to w (stderr) so results on
// stdout stay machine readable.
func newLogger(w io.Writer, levelString, formatString string) (*slog.Logger, error) {
	if levelString == "" {
		levelString = "WARN"
	}

	logLevels := map[string]slog.Leveler{
		"DEBUG": slog.DebugLevel,
		"INFO":  slog.InfoLevel,
		"WARN":  slog.WarnLevel,
		"ERROR": slog.ErrorLevel,
	}

	l, ok := logLevels[strings.ToUpper(levelString)]
	if !ok {
		return nil, fmt.Errorf("unrecognized log level: %s", levelString)
	}

	var lh slog.Handler

	switch strings.ToUpper(formatString) {
	case "JSON":
		lh = slog.HandlerOptions{Level: l}.NewJSONHandler(w)
	case "", "TEXT":
		lh = slog.HandlerOptions{Level: l}.NewTextHandler(w)
	default:
		return nil, fmt.Errorf("unrecognized log format: %s", formatString)
	}

	return slog.New(lh), nil
}
