package brewgo

import (
	"go.uber.org/zap"

	"github.com/brewgo/brewgo/internal"
)

// Option is a functional option for configuring an Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	host      HostEnvironment
	logger    *zap.Logger
	trace     bool
	separator string
	storage   internal.SpecializationStorage
}

// defaultEngineConfig returns the default engine configuration: a
// StdioHost-shaped caller must still supply a host (there is no
// meaningful no-op I/O boundary for a language runtime), so WithHost is
// effectively mandatory; everything else defaults the way CORE itself
// defaults.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		separator: internal.DefaultTypeSeparator,
	}
}

// WithHost sets the HostEnvironment a running program talks to. There is
// no default: New returns an error if this option is never supplied.
func WithHost(host HostEnvironment) Option {
	return func(c *engineConfig) { c.host = host }
}

// WithLogger sets the structured logger used for evaluator tracing.
// Default: zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithTrace additionally logs the discarded return value of main at debug
// level. Class loading and template specialization are logged at debug
// level through the configured logger whether or not trace is set.
func WithTrace(trace bool) Option {
	return func(c *engineConfig) { c.trace = trace }
}

// WithTypeSeparator overrides the character joining a template's mangled
// name to its type arguments. Default: "@".
func WithTypeSeparator(sep string) Option {
	return func(c *engineConfig) {
		if sep != "" {
			c.separator = sep
		}
	}
}

// WithStorage sets the backend used to cache concretized template
// specializations across runs. Default: nil (no caching; every run
// re-concretizes each instantiation it needs).
func WithStorage(storage internal.SpecializationStorage) Option {
	return func(c *engineConfig) { c.storage = storage }
}
