package config

import (
	"strconv"
	"strings"

	"emperror.dev/errors"
	"go.uber.org/zap/zapcore"
)

// Level is a logging level as written in the config file.
// It accepts level names (DEBUG, INFO, WARN/WARNING, ERROR, CRITICAL/FATAL) in any case,
// as well as the numeric levels 0, 10, 20, 30, 40 and 50.
type Level struct {
	lvl zapcore.Level
	set bool
}

// NewLevel returns a Level that is set to lvl.
func NewLevel(lvl zapcore.Level) Level {
	return Level{lvl: lvl, set: true}
}

// Zap returns the zap level. Unset levels are treated as info.
func (l Level) Zap() zapcore.Level {
	if !l.set {
		return zapcore.InfoLevel
	}
	return l.lvl
}

// IsSet returns true if the level was present in the config.
func (l Level) IsSet() bool { return l.set }

func (l Level) String() string { return l.Zap().CapitalString() }

func (l *Level) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))

	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n <= 10:
			l.lvl = zapcore.DebugLevel
		case n <= 20:
			l.lvl = zapcore.InfoLevel
		case n <= 30:
			l.lvl = zapcore.WarnLevel
		case n <= 40:
			l.lvl = zapcore.ErrorLevel
		default:
			l.lvl = zapcore.FatalLevel
		}
		l.set = true
		return nil
	}

	switch s {
	case "notset", "debug":
		l.lvl = zapcore.DebugLevel
	case "info":
		l.lvl = zapcore.InfoLevel
	case "warn", "warning":
		l.lvl = zapcore.WarnLevel
	case "error":
		l.lvl = zapcore.ErrorLevel
	case "critical", "fatal":
		l.lvl = zapcore.FatalLevel
	default:
		return errors.Errorf("unknown log level %q", string(b))
	}
	l.set = true
	return nil
}

// UnmarshalJSON accepts both quoted names and bare numbers.
func (l *Level) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	return l.UnmarshalText([]byte(strings.Trim(s, `"`)))
}
