package log

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger

// ApplyConfig reconfigures the default logger from a config instance
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyConfigString reconfigures the default logger from key=value overrides
func ApplyConfigString(overrides ...string) error {
	return defaultLogger.ApplyConfigString(overrides...)
}

// Close releases the default logger's line store and stops its heartbeat
func Close() error {
	return defaultLogger.Close()
}

// Log appends a message at the given level
func Log(level int64, format string, args ...any) {
	defaultLogger.Log(level, format, args...)
}

// Debug logs a message at debug level
func Debug(format string, args ...any) {
	defaultLogger.Debug(format, args...)
}

// Info logs a message at info level
func Info(format string, args ...any) {
	defaultLogger.Info(format, args...)
}

// Notice logs a message at notice level
func Notice(format string, args ...any) {
	defaultLogger.Notice(format, args...)
}

// Warning logs a message at warning level
func Warning(format string, args ...any) {
	defaultLogger.Warning(format, args...)
}

// Error logs a message at error level
func Error(format string, args ...any) {
	defaultLogger.Error(format, args...)
}

// Fatal logs a message at fatal level
func Fatal(format string, args ...any) {
	defaultLogger.Fatal(format, args...)
}

// Sanity logs a message at sanity level
func Sanity(format string, args ...any) {
	defaultLogger.Sanity(format, args...)
}

// Plain writes a line without timestamp or level prefix
func Plain(format string, args ...any) {
	defaultLogger.Plain(format, args...)
}

// Perror logs an error message annotated with its cause
func Perror(scope, message string, err error) {
	defaultLogger.Perror(scope, message, err)
}

// Dump writes a structured dump of a value at debug level
func Dump(label string, v any) {
	defaultLogger.Dump(label, v)
}

// Summary appends the end-of-run wipe report table
func Summary(results []*DeviceWipeResult, opts RunOptions) {
	defaultLogger.Summary(results, opts)
}
