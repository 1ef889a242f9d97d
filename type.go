package log

import (
	"time"
)

// VerifyMode selects how pass verification is reported in the run summary
type VerifyMode int

// Verification modes
const (
	VerifyNone VerifyMode = iota
	VerifyLast
	VerifyAll
)

// RunOptions carries the run-wide settings consumed by the summary table.
// LogFile and NoGUI mirror the engine configuration so a caller can derive
// a Config from the same option block it hands to the reporter.
type RunOptions struct {
	Method    string // display label of the wipe method
	Rounds    int
	Blanking  bool
	Verify    VerifyMode
	UserAbort bool
	LogFile   string
	NoGUI     bool
}

// DeviceWipeResult is one device's final record as supplied by the wipe
// orchestrator. The reporter reads every field and refreshes Duration.
type DeviceWipeResult struct {
	Device     string // full device path, e.g. /dev/sdb
	Model      string
	Serial     string
	ResultCode int // negative on hard failure
	PassErrors int

	Start time.Time // zero when the pass never started
	End   time.Time // zero when aborted by shutdown

	Duration   time.Duration // derived from Start/End, cached by the reporter
	Throughput uint64        // bytes per second
}
