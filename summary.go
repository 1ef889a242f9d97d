package log

import (
	"time"

	"github.com/zerowipe/log/formatter"
)

// Summary renders the end-of-run device table through the engine, one
// NoTimestamp append per row so the table lands in the store, the console
// and the log file like any other output. Nothing is emitted for an empty
// result set. Each record's cached Duration is refreshed in place.
func (l *Logger) Summary(results []*DeviceWipeResult, opts RunOptions) {
	if len(results) == 0 {
		return
	}

	now := time.Now()

	l.Plain("")
	l.Plain("%s", summaryBorder)
	l.Plain("%s", summaryHeader)
	l.Plain("%s", summaryDivider)

	var totalThroughput uint64
	for _, r := range results {
		status, flag := formatter.StatusColumn(r.ResultCode, r.PassErrors, opts.UserAbort)

		// A set Start with a zero End means the run was cut short, so the
		// duration is measured up to now
		if !r.Start.IsZero() && !r.End.IsZero() {
			r.Duration = r.End.Sub(r.Start)
		} else if !r.Start.IsZero() {
			r.Duration = now.Sub(r.Start)
		}
		if r.Duration < 0 {
			r.Duration = 0
		}
		hours, minutes, seconds := formatter.HMS(uint64(r.Duration / time.Second))

		totalThroughput += r.Throughput

		model := r.Model
		if len(model) > 17 {
			model = model[:17]
		}
		serial := r.Serial
		if len(serial) > 20 {
			serial = serial[:20]
		}

		l.Plain("%s %s |%s| %s/s | %02d:%02d:%02d | %s/%s",
			flag,
			formatter.DeviceColumn(r.Device),
			status,
			formatter.RateLabel(r.Throughput),
			hours,
			minutes,
			seconds,
			model,
			serial)
	}

	l.Plain("%s", summaryDivider)
	l.Plain("%s Total Throughput %s/s, %s, %dR+%s+%s",
		now.Format("[2006/01/02 15:04:05]"),
		formatter.RateLabel(totalThroughput),
		opts.Method,
		opts.Rounds,
		blankCode(opts.Blanking),
		verifyCode(opts.Verify))
	l.Plain("%s", summaryBorder)
	l.Plain("")
}

// blankCode is the summary abbreviation for the blanking pass.
func blankCode(enabled bool) string {
	if enabled {
		return "B"
	}
	return "NB"
}

// verifyCode is the summary abbreviation for the verification mode.
func verifyCode(mode VerifyMode) string {
	switch mode {
	case VerifyLast:
		return "VL"
	case VerifyAll:
		return "VA"
	default:
		return "NV"
	}
}
