// Package log provides fast, leveled, structured logging based on Go's
// slog package, with a console handler suited for emulator diagnostics.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// DefaultTimeFormat is the default time format of the console handler.
// Outputting of time can be disabled by setting the format to "-".
const DefaultTimeFormat = "2006-01-02 15:04:05"

// Config represents configuration for a logger.
type Config struct {
	Level Level

	// Output defaults to standard output.
	Output io.Writer

	// Handler overrides the default console handler.
	Handler slog.Handler

	// TimeFormat defines the time format, defaults to DefaultTimeFormat.
	TimeFormat string
}

// Logger provides leveled, structured logging. All methods are safe for
// concurrent use.
type Logger struct {
	logger  *slog.Logger
	handler slog.Handler
	level   *slog.LevelVar
}

// New returns a new Logger instance with default configuration.
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel()})
}

// NewWithConfig creates a new logger for the given config.
func NewWithConfig(cfg Config) *Logger {
	level := &slog.LevelVar{}
	level.Set(cfg.Level)

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	handler := cfg.Handler
	if handler == nil {
		timeFormat := cfg.TimeFormat
		if timeFormat == "" {
			timeFormat = DefaultTimeFormat
		}
		handler = NewConsoleHandler(output, ConsoleHandlerOptions{
			Level:      level,
			TimeFormat: timeFormat,
		})
	}

	return &Logger{
		logger:  slog.New(handler),
		handler: handler,
		level:   level,
	}
}

// NewNop creates a no-op logger which never writes logs to the output.
// Useful for tests.
func NewNop() *Logger {
	return NewWithConfig(Config{
		Output: io.Discard,
		Level:  Level(100),
	})
}

// With creates a child logger and adds structured context to it. Fields
// added to the child don't affect the parent, and vice versa.
func (l *Logger) With(fields ...any) *Logger {
	return &Logger{
		logger:  l.logger.With(fields...),
		handler: l.handler,
		level:   l.level,
	}
}

// Level returns the minimum enabled log level.
func (l *Logger) Level() Level {
	return l.level.Level()
}

// SetLevel alters the logging level.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level)
}

// Trace logs at TraceLevel.
func (l *Logger) Trace(msg string, args ...any) {
	l.log(TraceLevel, msg, args...)
}

// Debug logs at DebugLevel.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(DebugLevel, msg, args...)
}

// Info logs at InfoLevel.
func (l *Logger) Info(msg string, args ...any) {
	l.log(InfoLevel, msg, args...)
}

// Warn logs at WarnLevel.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(WarnLevel, msg, args...)
}

// Error logs at ErrorLevel.
func (l *Logger) Error(msg string, args ...any) {
	l.log(ErrorLevel, msg, args...)
}

// Fatal logs at FatalLevel, then exits the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.log(FatalLevel, msg, args...)
	fatalExitFunc()
}

func (l *Logger) log(level Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.handler.Enabled(ctx, level) {
		return
	}

	r := slog.Record{
		Time:    time.Now(),
		Message: msg,
		Level:   level,
	}
	r.Add(args...)
	_ = l.handler.Handle(ctx, r)
}

// fatalExitFunc defines the function to call when exiting due to a fatal
// log error. This is replaced in unit tests.
var fatalExitFunc = func() {
	os.Exit(1)
}
