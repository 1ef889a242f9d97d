// Package formatter provides the pure fixed-width field conversions used by
// the run summary table: wipe durations, throughput labels, device, and
// status columns.
package formatter

import (
	"fmt"
	"strings"
)

// Status fields are exactly eight characters
const (
	StatusFailed  = "-FAILED-"
	StatusAborted = "UABORTED"
	StatusErased  = " Erased "
)

// Alert flags prefixing a summary row
const (
	FlagAlert = "!"
	FlagClear = " "
)

// HMS converts a duration in seconds to hours, minutes and seconds using
// integer arithmetic only.
func HMS(totalSeconds uint64) (hours, minutes, seconds int) {
	minutes = int(totalSeconds / 60)
	seconds = int(totalSeconds % 60)
	if minutes > 59 {
		hours = minutes / 60
		minutes = minutes % 60
	}
	return hours, minutes, seconds
}

// RateLabel renders a byte rate as a 3-character right-justified magnitude
// plus unit, with thresholds at powers of 1000 and truncating division.
func RateLabel(bytesPerSec uint64) string {
	switch {
	case bytesPerSec >= 1000000000000:
		return fmt.Sprintf("%3d TB", bytesPerSec/1000000000000)
	case bytesPerSec >= 1000000000:
		return fmt.Sprintf("%3d GB", bytesPerSec/1000000000)
	case bytesPerSec >= 1000000:
		return fmt.Sprintf("%3d MB", bytesPerSec/1000000)
	case bytesPerSec >= 1000:
		return fmt.Sprintf("%3d KB", bytesPerSec/1000)
	default:
		return fmt.Sprintf("%3d B", bytesPerSec)
	}
}

// DeviceColumn reduces a device path to its trailing component right-justified
// into six characters. Components longer than six keep their last six
// characters.
func DeviceColumn(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if len(name) > 6 {
		name = name[len(name)-6:]
	}
	return fmt.Sprintf("%6s", name)
}

// StatusColumn derives the eight-character status field and one-character
// alert flag for a device row. A negative result code takes precedence over
// pass errors, which take precedence over a user abort.
func StatusColumn(resultCode, passErrors int, aborted bool) (status, flag string) {
	switch {
	case resultCode < 0:
		return StatusFailed, FlagAlert
	case passErrors != 0:
		return StatusFailed, FlagAlert
	case aborted:
		return StatusAborted, FlagAlert
	default:
		return StatusErased, FlagClear
	}
}
