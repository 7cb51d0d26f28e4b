// Package logging provides the zap backed log sink shared by the Wails runtime and the shell.
package logging

import (
	"fmt"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum level captured when the facility is attached
const Level = zapcore.InfoLevel

// Logger satisfies the Wails logger interface on top of zap.
// A Logger that is not attached discards everything.
type Logger struct {
	z        *zap.Logger
	attached bool
}

var _ wailslogger.Logger = (*Logger)(nil)

// New attaches the logging facility when debug is set. Release builds get a
// detached no-op logger. logFile is optional and only used in debug.
func New(debug bool, logFile string) (*Logger, error) {
	if !debug {
		return Nop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(Level)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	if logFile != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to attach log facility: %w", err)
	}
	return &Logger{z: z.Named("snail"), attached: true}, nil
}

// FromZap wraps an existing zap logger as an attached facility
func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z, attached: true}
}

// Nop returns a detached logger
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Attached reports whether log entries go anywhere
func (l *Logger) Attached() bool {
	return l.attached
}

// Zap exposes the underlying logger for structured fields
func (l *Logger) Zap() *zap.Logger {
	return l.z
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) Print(message string)   { l.z.Info(message) }
func (l *Logger) Trace(message string)   { l.z.Debug(message) }
func (l *Logger) Debug(message string)   { l.z.Debug(message) }
func (l *Logger) Info(message string)    { l.z.Info(message) }
func (l *Logger) Warning(message string) { l.z.Warn(message) }
func (l *Logger) Error(message string)   { l.z.Error(message) }
func (l *Logger) Fatal(message string)   { l.z.Fatal(message) }
