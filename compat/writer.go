package compat

import (
	"bytes"
	"sync"

	"github.com/zerowipe/log"
)

// WriterAdapter exposes a log.Logger as an io.Writer so byte-oriented
// producers, such as the standard library log package or a subprocess
// pipe, can feed the wipe log. Input is split on newlines and a trailing
// partial line is buffered until the next Write or Close.
type WriterAdapter struct {
	mu            sync.Mutex
	logger        *log.Logger
	level         int64
	levelDetector func(string) int64
	buf           bytes.Buffer
}

// NewWriterAdapter creates a writer emitting complete lines at info level
func NewWriterAdapter(logger *log.Logger, opts ...WriterOption) *WriterAdapter {
	adapter := &WriterAdapter{
		logger: logger,
		level:  log.LevelInfo,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// WriterOption allows customizing adapter behavior
type WriterOption func(*WriterAdapter)

// WithWriterLevel sets the level assigned to emitted lines
func WithWriterLevel(level int64) WriterOption {
	return func(a *WriterAdapter) {
		a.level = level
	}
}

// WithWriterLevelDetector routes each line through a content-based level
// detector instead of the fixed level
func WithWriterLevelDetector(detector func(string) int64) WriterOption {
	return func(a *WriterAdapter) {
		a.levelDetector = detector
	}
}

// Write implements io.Writer. It always reports full consumption; line
// delivery failures surface through the logger's own diagnostics.
func (a *WriterAdapter) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.buf.Write(p)
	for {
		data := a.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		line := string(data[:idx])
		a.buf.Next(idx + 1)
		a.emit(line)
	}

	return len(p), nil
}

// Close flushes any buffered partial line as a final record
func (a *WriterAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.buf.Len() > 0 {
		a.emit(a.buf.String())
		a.buf.Reset()
	}
	return nil
}

func (a *WriterAdapter) emit(line string) {
	level := a.level
	if a.levelDetector != nil {
		if detected := a.levelDetector(line); detected != log.LevelNone {
			level = detected
		}
	}
	a.logger.Log(level, "%s", line)
}
