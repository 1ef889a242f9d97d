package log

// Log level constants in ascending severity order
const (
	LevelNone        int64 = 0
	LevelDebug       int64 = 1
	LevelInfo        int64 = 2
	LevelNotice      int64 = 3
	LevelWarning     int64 = 4
	LevelError       int64 = 5
	LevelFatal       int64 = 6
	LevelSanity      int64 = 7
	LevelNoTimestamp int64 = 8
)

// Line rendering
const (
	// MaxLineChars caps a rendered log line, timestamp and prefix included, in bytes
	MaxLineChars = 512
	// timestampLayout is the bracketed wall-clock header on timestamped lines
	timestampLayout = "[2006/01/02 15:04:05] "
)

// Summary table framing
const (
	summaryBorder  = "************************************************************************************"
	summaryDivider = "------------------------------------------------------------------------------------"
	summaryHeader  = "! Device | Status | Thru-put | HH:MM:SS | Model/Serial Number"
)

// Console color sequences per level
const (
	colorReset   = "\033[0m"
	colorDebug   = "\033[35m"
	colorInfo    = "\033[34m"
	colorNotice  = "\033[36m"
	colorWarning = "\033[33m"
	colorError   = "\033[31m"
	colorFatal   = "\033[31m"
	colorSanity  = "\033[31m"
)
