package log

import (
	"fmt"
	"os"
	"strings"
)

// internalLog reports faults in the logging path itself on the error stream,
// since such diagnostics cannot travel through the engine they describe.
func internalLog(format string, args ...any) {
	if !strings.HasPrefix(format, "log: ") {
		format = "log: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "log: ") {
		format = "log: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// Level converts level string to numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "none":
		return LevelNone, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "notice":
		return LevelNotice, nil
	case "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "sanity":
		return LevelSanity, nil
	case "notimestamp":
		return LevelNoTimestamp, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use none, debug, info, notice, warning, error, fatal, sanity, notimestamp)", levelStr)
	}
}

// validateConfigValue validates a single configuration field
func validateConfigValue(key string, value any) error {
	keyLower := strings.ToLower(key)
	switch keyLower {
	case "log_file":
		v, ok := value.(string)
		if !ok {
			return fmtErrorf("log_file must be string, got %T", value)
		}
		if v != "" && strings.TrimSpace(v) == "" {
			return fmtErrorf("log_file cannot be blank")
		}

	case "color":
		v, ok := value.(string)
		if !ok {
			return fmtErrorf("color must be string, got %T", value)
		}
		if v != "off" && v != "auto" && v != "on" {
			return fmtErrorf("invalid color: '%s' (use off, auto, or on)", v)
		}

	case "sanitize":
		v, ok := value.(string)
		if !ok {
			return fmtErrorf("sanitize must be string, got %T", value)
		}
		if v != "txt" && v != "raw" {
			return fmtErrorf("invalid sanitize: '%s' (use txt or raw)", v)
		}

	case "heartbeat_interval_s":
		v, ok := value.(int64)
		if !ok {
			return fmtErrorf("heartbeat_interval_s must be int64, got %T", value)
		}
		if v < 0 {
			return fmtErrorf("heartbeat_interval_s cannot be negative: %d", v)
		}

	// Fields that don't need validation beyond type
	case "no_gui":
		return nil

	default:
		// Unknown field - let config system handle it
		return nil
	}

	return nil
}
