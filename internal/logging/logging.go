package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "PLUGINSYNC_LOG_LEVEL"
	EnvLogNoColor = "PLUGINSYNC_LOG_NOCOLOR"
)

// Options configures a logger.
type Options struct {
	Level   string
	NoColor bool
}

// New builds a console logger writing to out. The level falls back to the
// PLUGINSYNC_LOG_LEVEL environment variable, then to info.
func New(out io.Writer, opts Options) zerolog.Logger {
	applyEnvOverrides(&opts)
	lvl, ok := ParseLevel(opts.Level)
	if !ok {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "pluginsync").Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func applyEnvOverrides(opts *Options) {
	if strings.TrimSpace(opts.Level) == "" {
		opts.Level = os.Getenv(EnvLogLevel)
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		opts.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
