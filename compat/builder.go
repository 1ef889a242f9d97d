package compat

import (
	"fmt"
	stdlog "log"

	"github.com/zerowipe/log"
)

// Builder provides a flexible way to create configured logger adapters
// It can use an existing *log.Logger instance or create a new one from a *log.Config
type Builder struct {
	logger *log.Logger
	logCfg *log.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// Recommended for applications that already have a central logger instance
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *log.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("log/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *log.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*log.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing logger was provided, so we use it
	if b.logger != nil {
		return b.logger, nil
	}

	// Create a new logger instance
	l := log.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		// If no config was provided, use the default
		cfg = log.DefaultConfig()
	}

	// Apply the configuration
	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildWriter creates an io.Writer adapter
// It can be used anywhere a line-oriented byte sink is expected
func (b *Builder) BuildWriter(opts ...WriterOption) (*WriterAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewWriterAdapter(l, opts...), nil
}

// BuildPrintf creates a Printf adapter for single-method logger interfaces
func (b *Builder) BuildPrintf(opts ...PrintfOption) (*PrintfAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewPrintfAdapter(l, opts...), nil
}

// BuildStdLogger creates a standard library *log.Logger backed by the wipe log
func (b *Builder) BuildStdLogger(opts ...WriterOption) (*stdlog.Logger, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewStdLogger(l, opts...), nil
}

// GetLogger returns the underlying *log.Logger instance
// If a logger has not been provided or created yet, it will be initialized
func (b *Builder) GetLogger() (*log.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
// The following demonstrates how to feed third-party output into a single,
// shared wipe logger instance
//
//	// 1. Create and configure application's main logger
//	appLogger := log.NewLogger()
//	logCfg := log.DefaultConfig()
//	logCfg.LogFile = "/var/log/wipe.log"
//	if err := appLogger.ApplyConfig(logCfg); err != nil {
//		panic(fmt.Sprintf("failed to configure logger: %v", err))
//	}
//
//	// 2. Create a builder and provide the existing logger
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	// 3. Build the required adapters
//	printfLogger, err := builder.BuildPrintf()
//	if err != nil { /* handle error */ }
//
//	pipeWriter, err := builder.BuildWriter(compat.WithWriterLevel(log.LevelNotice))
//	if err != nil { /* handle error */ }
//
//	stdLogger, err := builder.BuildStdLogger()
//	if err != nil { /* handle error */ }
//
//	// 4. Wire the adapters into their consumers
//
//	// For libraries that accept a Printf-style logger:
//	client.Logger = printfLogger
//
//	// For subprocess output:
//	cmd := exec.Command("hdparm", "-I", "/dev/sda")
//	cmd.Stdout = pipeWriter
//	cmd.Stderr = pipeWriter
//	_ = cmd.Run()
//	_ = pipeWriter.Close()
//
//	// For code built on the standard library logger:
//	stdLogger.Println("device scan complete")
