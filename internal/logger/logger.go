package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Query logs a SQL statement collapsed to a single line together with its
// arguments, result and error. Failed statements are logged at error level.
func Query(query string, args []any, result any, err error) {
	q := strings.Join(strings.Fields(query), " ")
	if err != nil {
		Log.Errorw("query", "sql", q, "args", args, "error", err)
		return
	}
	Log.Debugw("query", "sql", q, "args", args, "result", result)
}
