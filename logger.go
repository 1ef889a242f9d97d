package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/zerowipe/log/sanitizer"
)

// Logger is the synchronization point for all appends. It owns the line
// store and guarantees at most one in-flight append across all goroutines;
// the same critical section covers formatting, store growth, console echo,
// and file persistence, so an append blocks while any other append's file
// I/O is still in flight.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex // guards config application and heartbeat transitions

	// mu is the single append critical section
	mu        sync.Mutex
	store     lineStore
	formatter *lineFormatter
	sanitizer *sanitizer.Sanitizer
	console   io.Writer
	colorize  bool

	// heartbeat goroutine lifecycle, guarded by initMu
	hbStop chan struct{}
	hbDone chan struct{}
}

// NewLogger creates a ready Logger with default settings: an empty store,
// zeroed cursors, no file persistence and no console echo.
func NewLogger() *Logger {
	l := &Logger{
		formatter: newLineFormatter(),
		console:   os.Stdout,
	}

	// Set default configuration
	l.currentConfig.Store(DefaultConfig())
	l.sanitizer = sanitizer.New().Policy(sanitizer.PolicyTxt)

	// Initialize the state
	l.state.IsInitialized.Store(true)
	l.state.CloseCalled.Store(false)
	l.state.LoggerStartTime.Store(time.Now())

	return l
}

// ApplyConfig applies a validated configuration to the logger.
// This is the primary way applications should configure the logger.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("log: configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("log: invalid configuration: %w", err)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// applyConfig is the internal implementation for applying configuration,
// assuming initMu is held. A bad log file path surfaces per line at persist
// time rather than here, so there is nothing to roll back.
func (l *Logger) applyConfig(cfg *Config) error {
	oldCfg := l.getConfig()
	l.currentConfig.Store(cfg)

	var san *sanitizer.Sanitizer
	if cfg.Sanitize == "raw" {
		san = sanitizer.New().Policy(sanitizer.PolicyRaw)
	} else {
		san = sanitizer.New().Policy(sanitizer.PolicyTxt)
	}

	// Swap rendering state under the append lock so no in-flight line
	// observes a half-applied config
	l.mu.Lock()
	l.sanitizer = san
	switch cfg.Color {
	case "on":
		l.colorize = true
	case "auto":
		f, ok := l.console.(*os.File)
		l.colorize = ok && isatty.IsTerminal(f.Fd())
	default:
		l.colorize = false
	}
	l.mu.Unlock()

	// Restart the heartbeat when its interval changed
	if oldCfg.HeartbeatIntervalS != cfg.HeartbeatIntervalS {
		l.stopHeartbeatLocked()
		if cfg.HeartbeatIntervalS > 0 && !l.state.CloseCalled.Load() {
			l.startHeartbeatLocked(time.Duration(cfg.HeartbeatIntervalS) * time.Second)
		}
	}

	l.state.IsInitialized.Store(true)
	return nil
}

// Log appends one formatted record at the given level. Appends never fail
// toward the caller: overflow truncates, persistence failures degrade to a
// diagnostic on the error stream, and the append continues.
func (l *Logger) Log(level int64, format string, args ...any) {
	l.log(level, format, args...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs a message at info level
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Notice logs a message at notice level
func (l *Logger) Notice(format string, args ...any) {
	l.log(LevelNotice, format, args...)
}

// Warning logs a message at warning level
func (l *Logger) Warning(format string, args ...any) {
	l.log(LevelWarning, format, args...)
}

// Error logs a message at error level
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Fatal logs a message at fatal level. Process termination is the caller's
// decision, not the engine's.
func (l *Logger) Fatal(format string, args ...any) {
	l.log(LevelFatal, format, args...)
}

// Sanity logs an internal consistency failure
func (l *Logger) Sanity(format string, args ...any) {
	l.log(LevelSanity, format, args...)
}

// Plain logs a message with neither timestamp nor level prefix, used for
// preformatted output such as the summary table
func (l *Logger) Plain(format string, args ...any) {
	l.log(LevelNoTimestamp, format, args...)
}

// Perror logs a failed operation at error level in the
// "scope: message: error" form used for system call failures.
func (l *Logger) Perror(scope, message string, err error) {
	if err == nil {
		l.log(LevelError, "%s: %s", scope, message)
		return
	}
	l.log(LevelError, "%s: %s: %s", scope, message, err)
}

// log is the single append path. The whole operation executes inside one
// critical section; at most one append is in progress at any time.
func (l *Logger) log(level int64, format string, args ...any) {
	if l.state.CloseCalled.Load() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	message = l.sanitizer.Sanitize(message)

	line, truncated := l.formatter.render(level, time.Now(), message)
	if truncated {
		l.state.TotalTruncations.Add(1)
		internalLog("line exceeds %d bytes and was truncated: %.40s...\n", MaxLineChars, line)
	}

	if !l.store.append(line) {
		internalLog("line store released, dropping: %.40s\n", line)
		return
	}
	l.state.TotalLinesAppended.Add(1)

	cfg := l.getConfig()
	if cfg.LogFile == "" {
		// Without a file the console is the only external surface, gated
		// on NoGUI so a terminal UI can poll the store instead
		if cfg.NoGUI {
			l.echoLine(level, line)
			l.store.markDisplayed()
		}
		return
	}

	if err := persistLine(cfg.LogFile, line); err != nil {
		l.state.TotalPersistFailures.Add(1)
		internalLog("%v\n", err)
		return
	}
	l.state.TotalLinesPersisted.Add(1)
}

// echoLine mirrors one line to the console, colorized per level when enabled.
// Assumes mu is held.
func (l *Logger) echoLine(level int64, line string) {
	if l.colorize {
		if c := levelColor(level); c != "" {
			fmt.Fprintf(l.console, "%s%s%s\n", c, line, colorReset)
			return
		}
	}
	fmt.Fprintln(l.console, line)
}

// Lines returns a copy of every stored line in append order.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.snapshot()
}

// Len reports the number of stored lines.
func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.length()
}

// Pending returns the stored lines not yet surfaced to a consumer and
// advances the displayed cursor past them. Intended for an external UI
// polling the engine.
func (l *Logger) Pending() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.pending()
}

// DisplayedCount reports how many stored lines have been surfaced, either
// echoed to the console or consumed through Pending.
func (l *Logger) DisplayedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.displayed
}
