package log

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heartbeatRunning(l *Logger) bool {
	l.initMu.Lock()
	defer l.initMu.Unlock()
	return l.hbStop != nil
}

// TestHeartbeatDisabledByDefault verifies no statistics line appears unless
// an interval is configured
func TestHeartbeatDisabledByDefault(t *testing.T) {
	logger, _ := createTestLogger(t)

	assert.False(t, heartbeatRunning(logger))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 0, logger.Len())
}

// TestHeartbeatEmission verifies that heartbeat messages are logged correctly
func TestHeartbeatEmission(t *testing.T) {
	logger, _ := createTestLogger(t)

	logger.Info("Wiping /dev/sdb")
	logger.Info("Wiping /dev/sdc")

	err := logger.ApplyConfigString("heartbeat_interval_s=1")
	require.NoError(t, err)
	assert.True(t, heartbeatRunning(logger))

	// Wait for heartbeats
	time.Sleep(1500 * time.Millisecond)

	content := strings.Join(logger.Lines(), "\n")
	assert.Contains(t, content, "notice: heartbeat sequence=1")
	assert.Contains(t, content, "uptime_hours=")
	assert.Contains(t, content, "appended=2")
	assert.Contains(t, content, "persisted=0")
	assert.Contains(t, content, "persist_failures=0")
	assert.Contains(t, content, "truncated=0")
	assert.Contains(t, content, "alloc_mb=")
	assert.Contains(t, content, "goroutines=")

	assert.GreaterOrEqual(t, logger.state.HeartbeatSequence.Load(), uint64(1))
}

// TestHeartbeatZeroIntervalStops verifies reconfiguring to interval 0 halts
// the emitter without disturbing stored lines
func TestHeartbeatZeroIntervalStops(t *testing.T) {
	logger, _ := createTestLogger(t)

	require.NoError(t, logger.ApplyConfigString("heartbeat_interval_s=1"))
	time.Sleep(1200 * time.Millisecond)
	require.True(t, logger.Len() >= 1)

	require.NoError(t, logger.ApplyConfigString("heartbeat_interval_s=0"))
	assert.False(t, heartbeatRunning(logger))

	lenAfterStop := logger.Len()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, lenAfterStop, logger.Len())
}

// TestHeartbeatRestartOnIntervalChange verifies a new interval replaces the
// running emitter and the sequence keeps counting
func TestHeartbeatRestartOnIntervalChange(t *testing.T) {
	logger, _ := createTestLogger(t)

	require.NoError(t, logger.ApplyConfigString("heartbeat_interval_s=1"))
	time.Sleep(1200 * time.Millisecond)
	firstSeq := logger.state.HeartbeatSequence.Load()
	require.GreaterOrEqual(t, firstSeq, uint64(1))

	require.NoError(t, logger.ApplyConfigString("heartbeat_interval_s=2"))
	assert.True(t, heartbeatRunning(logger))

	time.Sleep(2500 * time.Millisecond)
	assert.Greater(t, logger.state.HeartbeatSequence.Load(), firstSeq)
}

// TestHeartbeatStopsOnClose verifies Close tears the emitter down
func TestHeartbeatStopsOnClose(t *testing.T) {
	logger := NewLogger()

	require.NoError(t, logger.ApplyConfigString("heartbeat_interval_s=1"))
	require.True(t, heartbeatRunning(logger))

	require.NoError(t, logger.Close())
	assert.False(t, heartbeatRunning(logger))
}
