package compat

import (
	"fmt"
	stdlog "log"
	"strings"

	"github.com/zerowipe/log"
)

// PrintfAdapter satisfies single-method Printf logger interfaces, routing
// each message through content-based level detection
type PrintfAdapter struct {
	logger        *log.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewPrintfAdapter creates a new Printf-compatible logger adapter
func NewPrintfAdapter(logger *log.Logger, opts ...PrintfOption) *PrintfAdapter {
	adapter := &PrintfAdapter{
		logger:        logger,
		defaultLevel:  log.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// PrintfOption allows customizing adapter behavior
type PrintfOption func(*PrintfAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) PrintfOption {
	return func(a *PrintfAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) PrintfOption {
	return func(a *PrintfAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements the single-method logger interface
func (a *PrintfAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != log.LevelNone {
			level = detected
		}
	}

	a.logger.Log(level, "%s", msg)
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return log.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return log.LevelWarning
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return log.LevelDebug
	}

	// Default to info level
	return log.LevelInfo
}

// NewStdLogger returns a standard library logger whose output feeds the
// wipe log line by line. Flags and prefix are left zero so the log's own
// timestamping is the only one applied.
func NewStdLogger(logger *log.Logger, opts ...WriterOption) *stdlog.Logger {
	return stdlog.New(NewWriterAdapter(logger, opts...), "", 0)
}
