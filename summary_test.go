package log

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// summaryFixture returns a completed single-device run
func summaryFixture() ([]*DeviceWipeResult, RunOptions) {
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	results := []*DeviceWipeResult{
		{
			Device:     "/dev/sdb",
			Model:      "WD6788",
			Serial:     "ZX677888388-N",
			Start:      start,
			End:        start.Add(1*time.Hour + 1*time.Minute + 1*time.Second),
			Throughput: 2_000_000_000,
		},
	}
	opts := RunOptions{
		Method: "PRNG Stream",
		Rounds: 1,
		Verify: VerifyAll,
	}
	return results, opts
}

// TestSummaryTable verifies the table framing and the exact row rendering
func TestSummaryTable(t *testing.T) {
	logger, _ := createTestLogger(t)
	results, opts := summaryFixture()

	logger.Summary(results, opts)

	lines := logger.Lines()
	require.Len(t, lines, 9)

	border := strings.Repeat("*", 84)
	divider := strings.Repeat("-", 84)

	assert.Equal(t, "", lines[0])
	assert.Equal(t, border, lines[1])
	assert.Equal(t, "! Device | Status | Thru-put | HH:MM:SS | Model/Serial Number", lines[2])
	assert.Equal(t, divider, lines[3])
	assert.Equal(t, "     sdb | Erased |   2 GB/s | 01:01:01 | WD6788/ZX677888388-N", lines[4])
	assert.Equal(t, divider, lines[5])
	assert.Regexp(t,
		`^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\] Total Throughput   2 GB/s, PRNG Stream, 1R\+NB\+VA$`,
		lines[6])
	assert.Equal(t, border, lines[7])
	assert.Equal(t, "", lines[8])
}

// TestSummaryEmpty verifies nothing is emitted for an empty result set
func TestSummaryEmpty(t *testing.T) {
	logger, _ := createTestLogger(t)

	logger.Summary(nil, RunOptions{Method: "Zero Fill", Rounds: 1})
	logger.Summary([]*DeviceWipeResult{}, RunOptions{Method: "Zero Fill", Rounds: 1})

	assert.Equal(t, 0, logger.Len())
}

// TestSummaryStatuses verifies the status precedence and alert flags
func TestSummaryStatuses(t *testing.T) {
	logger, _ := createTestLogger(t)
	start := time.Now().Add(-time.Minute)
	end := time.Now()

	results := []*DeviceWipeResult{
		{Device: "/dev/sda", ResultCode: -1, Start: start, End: end},
		{Device: "/dev/sdb", PassErrors: 7, Start: start, End: end},
		{Device: "/dev/sdc", Start: start, End: end},
	}
	opts := RunOptions{Method: "Zero Fill", Rounds: 1, UserAbort: true}

	logger.Summary(results, opts)

	lines := logger.Lines()
	require.Len(t, lines, 11)
	rows := lines[4:7]

	// Hard failure and pass errors outrank the abort
	assert.True(t, strings.HasPrefix(rows[0], "!"), "row: %q", rows[0])
	assert.Contains(t, rows[0], "|-FAILED-|")
	assert.True(t, strings.HasPrefix(rows[1], "!"))
	assert.Contains(t, rows[1], "|-FAILED-|")

	// A clean device in an aborted run reports the abort
	assert.True(t, strings.HasPrefix(rows[2], "!"))
	assert.Contains(t, rows[2], "|UABORTED|")
}

// TestSummaryErasedFlag verifies the clean row carries a blank flag
func TestSummaryErasedFlag(t *testing.T) {
	logger, _ := createTestLogger(t)
	results, opts := summaryFixture()

	logger.Summary(results, opts)

	row := logger.Lines()[4]
	assert.True(t, strings.HasPrefix(row, " "), "row: %q", row)
	assert.Contains(t, row, "| Erased |")
}

// TestSummaryDuration verifies duration derivation and caching
func TestSummaryDuration(t *testing.T) {
	t.Run("completed run uses end minus start", func(t *testing.T) {
		logger, _ := createTestLogger(t)
		results, opts := summaryFixture()

		logger.Summary(results, opts)

		expected := results[0].End.Sub(results[0].Start)
		assert.Equal(t, expected, results[0].Duration)
	})

	t.Run("missing end keeps counting from start", func(t *testing.T) {
		logger, _ := createTestLogger(t)
		start := time.Now().Add(-(90*time.Minute + 30*time.Second))
		results := []*DeviceWipeResult{{Device: "/dev/sdb", Start: start}}

		logger.Summary(results, RunOptions{Method: "Zero Fill", Rounds: 1})

		assert.GreaterOrEqual(t, results[0].Duration, 90*time.Minute+30*time.Second)
		assert.Less(t, results[0].Duration, 90*time.Minute+32*time.Second)
		assert.Contains(t, logger.Lines()[4], "| 01:30:3")
	})

	t.Run("negative duration clamps to zero", func(t *testing.T) {
		logger, _ := createTestLogger(t)
		results := []*DeviceWipeResult{{
			Device: "/dev/sdb",
			Start:  time.Now().Add(time.Hour), // clock skew scenario
		}}

		logger.Summary(results, RunOptions{Method: "Zero Fill", Rounds: 1})

		assert.Equal(t, time.Duration(0), results[0].Duration)
		assert.Contains(t, logger.Lines()[4], "| 00:00:00 |")
	})

	t.Run("hours keep growing past a day", func(t *testing.T) {
		logger, _ := createTestLogger(t)
		start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
		results := []*DeviceWipeResult{{
			Device: "/dev/sdb",
			Start:  start,
			End:    start.Add(25*time.Hour + time.Minute + time.Second),
		}}

		logger.Summary(results, RunOptions{Method: "Zero Fill", Rounds: 1})

		assert.Contains(t, logger.Lines()[4], "| 25:01:01 |")
	})
}

// TestSummaryColumnLimits verifies model, serial and device name truncation
func TestSummaryColumnLimits(t *testing.T) {
	logger, _ := createTestLogger(t)
	start := time.Now().Add(-time.Minute)

	results := []*DeviceWipeResult{{
		Device: "/dev/disk/by-id/ata-verylongname",
		Model:  "EXTREMELY LONG MODEL NAME 9000",
		Serial: "SERIAL-NUMBER-THAT-GOES-ON-FOREVER",
		Start:  start,
		End:    time.Now(),
	}}

	logger.Summary(results, RunOptions{Method: "Zero Fill", Rounds: 1})

	row := logger.Lines()[4]

	// Device keeps the last six characters of its trailing path component
	assert.Contains(t, row, " ngname |")
	// Model cut to seventeen, serial to twenty
	assert.Contains(t, row, "| EXTREMELY LONG MO/SERIAL-NUMBER-THAT-G")
}

// TestSummaryTotals verifies throughput accumulation and the option codes
func TestSummaryTotals(t *testing.T) {
	logger, _ := createTestLogger(t)
	start := time.Now().Add(-time.Minute)
	end := time.Now()

	results := []*DeviceWipeResult{
		{Device: "/dev/sda", Start: start, End: end, Throughput: 1_000_000_000},
		{Device: "/dev/sdb", Start: start, End: end, Throughput: 1_000_000_000},
	}
	opts := RunOptions{
		Method:   "DoD 5220.22-M",
		Rounds:   4,
		Blanking: true,
		Verify:   VerifyNone,
	}

	logger.Summary(results, opts)

	lines := logger.Lines()
	footer := lines[len(lines)-3]
	assert.Contains(t, footer, "Total Throughput   2 GB/s, DoD 5220.22-M, 4R+B+NV")
}

// TestSummaryThroughSinks verifies the table passes through the echo sink whole
func TestSummaryThroughSinks(t *testing.T) {
	logger, console := createTestLogger(t)
	require.NoError(t, logger.ApplyConfigString("no_gui=true"))

	results, opts := summaryFixture()
	logger.Summary(results, opts)

	out := console.String()
	assert.Contains(t, out, "\n"+strings.Repeat("*", 84)+"\n")
	assert.Contains(t, out, "\n     sdb | Erased |   2 GB/s | 01:01:01 | WD6788/ZX677888388-N\n")
}
