package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Level is a log severity.
type Level = zapcore.Level

// The levels a Logger can be set to.
const (
	DEBUG = zapcore.DebugLevel
	INFO  = zapcore.InfoLevel
	WARN  = zapcore.WarnLevel
	ERROR = zapcore.ErrorLevel
)

// LevelFromString parses a level name as given to --log-level: debug, info, warn (or warning) and
// error, in any case.
func LevelFromString(inp string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(inp))
	if name == "warning" {
		name = "warn"
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil || name == "" || level < DEBUG || level > ERROR {
		return INFO, errors.Errorf("unknown log level %q, expected debug, info, warn or error", inp)
	}
	return level, nil
}
