package log

import (
	"runtime"
	"time"
)

// startHeartbeatLocked launches the periodic statistics emitter. Caller
// must hold initMu and must have stopped any previous heartbeat.
func (l *Logger) startHeartbeatLocked(interval time.Duration) {
	stop := make(chan struct{})
	done := make(chan struct{})
	l.hbStop = stop
	l.hbDone = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				l.emitHeartbeat()
			}
		}
	}()
}

// stopHeartbeatLocked signals the heartbeat goroutine and waits for it to
// drain. Caller must hold initMu. Safe to call when no heartbeat runs.
func (l *Logger) stopHeartbeatLocked() {
	if l.hbStop == nil {
		return
	}
	close(l.hbStop)
	<-l.hbDone
	l.hbStop = nil
	l.hbDone = nil
}

// stopHeartbeat is the unlocked form used during Close
func (l *Logger) stopHeartbeat() {
	l.initMu.Lock()
	defer l.initMu.Unlock()
	l.stopHeartbeatLocked()
}

// emitHeartbeat writes one statistics line through the normal append path
func (l *Logger) emitHeartbeat() {
	sequence := l.state.HeartbeatSequence.Add(1)

	var uptimeHours float64
	if startTime, ok := l.state.LoggerStartTime.Load().(time.Time); ok && !startTime.IsZero() {
		uptimeHours = time.Since(startTime).Hours()
	}

	appended := l.state.TotalLinesAppended.Load()
	persisted := l.state.TotalLinesPersisted.Load()
	persistFailures := l.state.TotalPersistFailures.Load()
	truncated := l.state.TotalTruncations.Load()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	l.Notice("heartbeat sequence=%d uptime_hours=%.2f appended=%d persisted=%d persist_failures=%d truncated=%d alloc_mb=%.2f goroutines=%d",
		sequence, uptimeHours, appended, persisted, persistFailures, truncated,
		float64(memStats.Alloc)/(1000*1000), runtime.NumGoroutine())
}
