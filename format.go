package log

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// lineFormatter renders records into their on-wire text form. The buffer is
// reused between calls; the engine serializes access.
type lineFormatter struct {
	buf []byte
}

// newLineFormatter creates a lineFormatter instance.
func newLineFormatter() *lineFormatter {
	return &lineFormatter{
		buf: make([]byte, 0, MaxLineChars),
	}
}

// render produces the final line for one record, enforcing the MaxLineChars
// cap. The bool reports whether the line was cut to fit. Lines at LevelNone
// and LevelNoTimestamp carry neither the date nor a prefix.
func (f *lineFormatter) render(level int64, timestamp time.Time, message string) (string, bool) {
	f.buf = f.buf[:0]

	if level != LevelNone && level != LevelNoTimestamp {
		f.buf = timestamp.AppendFormat(f.buf, timestampLayout)
		f.buf = append(f.buf, levelPrefix(level)...)
	}
	f.buf = append(f.buf, message...)

	if len(f.buf) > MaxLineChars {
		return string(f.buf[:MaxLineChars]), true
	}
	return string(f.buf), false
}

// levelPrefix returns the prefix rendered after the timestamp for a level,
// or a numeric fallback for values outside the known set.
func levelPrefix(level int64) string {
	switch level {
	case LevelDebug:
		return "debug: "
	case LevelInfo:
		return "info: "
	case LevelNotice:
		return "notice: "
	case LevelWarning:
		return "warning: "
	case LevelError:
		return "error: "
	case LevelFatal:
		return "fatal: "
	case LevelSanity:
		return "sanity: "
	case LevelNone, LevelNoTimestamp:
		return ""
	default:
		return fmt.Sprintf("level %d: ", level)
	}
}

// levelColor returns the ANSI sequence for a level, or "" for levels echoed
// without color.
func levelColor(level int64) string {
	switch level {
	case LevelDebug:
		return colorDebug
	case LevelInfo:
		return colorInfo
	case LevelNotice:
		return colorNotice
	case LevelWarning:
		return colorWarning
	case LevelError:
		return colorError
	case LevelFatal:
		return colorFatal
	case LevelSanity:
		return colorSanity
	default:
		return ""
	}
}

// Dump appends a Debug-level rendering of v, one appended line per rendered
// row, each prefixed with the label. Intended for structures too rich for a
// format string.
func (l *Logger) Dump(label string, v any) {
	var b bytes.Buffer

	// Use a custom dumper for log-friendly, compact output.
	dumper := &spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                10,
		DisablePointerAddresses: true, // Cleaner for logs
		DisableCapacities:       true, // Less noise
		SortKeys:                true, // Consistent map output
	}
	dumper.Fdump(&b, v)

	for _, row := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		l.Debug("%s: %s", label, row)
	}
}
