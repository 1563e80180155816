package logging

// Logger is a leveled, structured logger. The tools log key/value pairs only, so that every line
// can be filtered on its fields.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named "<name>.<subname>" that shares this logger's appenders and
	// starts at its level.
	Sublogger(subname string) Logger
	SetLevel(level Level)
	GetLevel() Level
	// Sync flushes every appender.
	Sync() error
}
