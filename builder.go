package log

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Create a new logger.
	logger := NewLogger()

	// Apply the built configuration. ApplyConfig handles all initialization and validation.
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// LogFile sets the target file for persisted lines. Empty disables persistence.
func (b *Builder) LogFile(path string) *Builder {
	b.cfg.LogFile = path
	return b
}

// NoGUI enables echoing lines to the console when no file is configured.
func (b *Builder) NoGUI(enable bool) *Builder {
	b.cfg.NoGUI = enable
	return b
}

// Color sets the console color mode ("off", "auto", or "on").
func (b *Builder) Color(mode string) *Builder {
	b.cfg.Color = mode
	return b
}

// Sanitize sets the message text sanitization policy ("txt" or "raw").
func (b *Builder) Sanitize(policy string) *Builder {
	b.cfg.Sanitize = policy
	return b
}

// HeartbeatIntervalS sets the engine stats interval in seconds. Zero disables it.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// Example usage:
// logger, err := log.NewBuilder().
//
//	LogFile("/var/log/wipe.log").
//	NoGUI(true).
//	Color("auto").
//	Build()
//
// if err == nil {
//
//	 defer logger.Close()
//	 logger.Info("logger initialized")
//
// }
