// Package logger wraps a process-wide zap logger. Until Init is called it
// writes warnings and above to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	L *zap.SugaredLogger
	Z *zap.Logger

	closer io.Closer
)

func init() {
	Z = zap.New(newCore(os.Stderr, zapcore.WarnLevel), zap.AddCallerSkip(1))
	L = Z.Sugar()
}

// Config controls level and destination. With File set, logs go only to a
// rotating file so they do not draw over the TUI.
type Config struct {
	Level      string
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
}

func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", s)
}

func Init(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSize, 16),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAge, 14),
			Compress:   true,
		}
		closer = lj
		out = lj
	}

	Z = zap.New(newCore(out, level), zap.AddCallerSkip(1))
	L = Z.Sugar()
	return nil
}

// SetOutput routes logs to w at the given level. Used by tests and by
// commands that want logs on stdout.
func SetOutput(w io.Writer, level zapcore.Level) {
	Z = zap.New(newCore(w, level), zap.AddCallerSkip(1))
	L = Z.Sugar()
}

// Silence drops all log output. The TUI uses it when no log file is
// configured.
func Silence() {
	Z = zap.NewNop()
	L = Z.Sugar()
}

// Sync flushes buffered entries and closes the log file, if any.
func Sync() {
	if Z != nil {
		_ = Z.Sync()
	}
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
}

func newCore(w io.Writer, level zapcore.Level) zapcore.Core {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func Debugf(template string, args ...interface{}) { L.Debugf(template, args...) }

func Infof(template string, args ...interface{}) { L.Infof(template, args...) }

func Warnf(template string, args ...interface{}) { L.Warnf(template, args...) }

func Errorf(template string, args ...interface{}) { L.Errorf(template, args...) }
