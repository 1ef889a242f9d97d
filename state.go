package log

import (
	"sync/atomic"
)

// State encapsulates the runtime state of the logger
type State struct {
	IsInitialized atomic.Bool
	CloseCalled   atomic.Bool

	// Engine statistics, reported by the heartbeat
	LoggerStartTime      atomic.Value  // stores time.Time for uptime calculation
	TotalLinesAppended   atomic.Uint64 // Counter for lines accepted into the store
	TotalLinesPersisted  atomic.Uint64 // Counter for lines written to the log file
	TotalPersistFailures atomic.Uint64 // Counter for file writes skipped on error
	TotalTruncations     atomic.Uint64 // Counter for lines cut at the length cap
	HeartbeatSequence    atomic.Uint64 // Counter for heartbeat sequence numbers
}

// Close releases the engine: the heartbeat stops and the owned line store is
// dropped. Appends after Close are silently ignored. Close is idempotent.
func (l *Logger) Close() error {
	if !l.state.CloseCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.stopHeartbeat()

	l.mu.Lock()
	l.store.release()
	l.mu.Unlock()

	l.state.IsInitialized.Store(false)
	return nil
}
