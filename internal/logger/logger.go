package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	once         sync.Once
)

// InitLogging configures the global zerolog logger. Logs go to stderr so
// they never interleave with the interactive menu on stdout.
func InitLogging(logFilePath, level string) {
	once.Do(func() {
		var writers []io.Writer
		writers = append(writers, os.Stderr)

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// The logger is not ready yet.
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		lvl, err := zerolog.ParseLevel(level)
		if err != nil || level == "" {
			lvl = zerolog.InfoLevel
		}
		setGlobal(zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(lvl))
	})
}

// SetOutput replaces the global logger with one writing to w at debug
// level. Intended for tests and for silencing logs.
func SetOutput(w io.Writer) {
	setGlobal(zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel))
}

func setGlobal(l zerolog.Logger) {
	globalLogger = l
	log.Logger = l
}

// WithLogger returns a new context containing the logger with additional fields.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := getLogger(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

// getLogger extracts the zerolog logger from the context, falling back to the global logger.
func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	// zerolog.Ctx returns a disabled logger if none is in context
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Debug().Msgf(msg, args...)
}

func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

// ErrorLog logs an error level message. When the last argument is an
// error it is also attached as a structured field.
func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	ev := getLogger(ctx).Error()
	if len(args) > 0 {
		if err, ok := args[len(args)-1].(error); ok {
			ev = ev.Err(err)
		}
	}
	ev.Msgf(msg, args...)
}
