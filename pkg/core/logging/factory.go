// ============================================================================
// toolbox - Identifier Case Conversion Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating service loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	tblog "github.com/msto63/toolbox/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format
	Format string // "json" or "text" (default: json)

	// Output writer (default: stderr, so converted text on stdout stays clean)
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

var (
	defaultsMu    sync.RWMutex
	defaultLevel  = "info"
	defaultFormat = "json"
)

// SetDefaults changes the level and format of DefaultLoggerConfig, and so
// of every logger created afterwards with New. Empty values are ignored
func SetDefaults(level, format string) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	if level != "" {
		defaultLevel = level
	}
	if format != "" {
		defaultFormat = format
	}
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()

	return LoggerConfig{
		ServiceName: serviceName,
		Level:       defaultLevel,
		Format:      defaultFormat,
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *tblog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := tblog.ParseFormat(cfg.Format)
	if err != nil {
		format = tblog.FormatJSON
	}

	return tblog.NewWithConfig(tblog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: true,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *tblog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to tblog.Level, falling back to info
func parseLevel(level string) tblog.Level {
	parsed, err := tblog.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return tblog.LevelInfo
	}
	return parsed
}

// Key/value layer for code that logs with alternating keys and values

// Logger wraps the Foundation logger
type Logger struct {
	*tblog.Logger
	name string
}

// New creates a key/value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// Wrap adapts an existing Foundation logger
func Wrap(logger *tblog.Logger, name string) *Logger {
	return &Logger{Logger: logger, name: name}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{
		Logger: l.Logger.WithLevel(level.foundation()),
		name:   l.name,
	}
}

// With returns a new logger carrying the given key/value pairs
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Debug logs a debug message with key/value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key/value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key/value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key/value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to tblog.Fields
func toFields(keysAndValues ...interface{}) tblog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(tblog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
