package brewgo

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable deployment configuration for a brewgo
// Engine: everything an operator tunes per-environment that a program's
// own source tree should never hardcode (storage backend selection,
// tracing, the template-argument separator). Engine options
// (WithLogger, WithHost, ...) remain the Go-level API; Config is the
// file-level counterpart cmd/brewgo's --config flag loads, mirrored on
// the teacher's YAML-frontmatter Prompt struct.
type Config struct {
	// TypeSeparator overrides the character joining a template's mangled
	// name to its type arguments. Default: "@".
	TypeSeparator string `yaml:"type_separator,omitempty"`

	// Trace makes cmd/brewgo log class loading, template specialization,
	// and discarded main return values at debug level to stderr.
	Trace bool `yaml:"trace,omitempty"`

	// Storage selects the SpecializationStorage backend: "memory"
	// (default), "filesystem", "postgres", or "cached".
	Storage string `yaml:"storage,omitempty"`

	// FilesystemDir is the root directory the filesystem backend writes
	// under. Only consulted when Storage is "filesystem" or "cached".
	FilesystemDir string `yaml:"filesystem_dir,omitempty"`

	// PostgresDSN is the connection string the postgres backend dials.
	// Only consulted when Storage is "postgres". Falls back
	// to the BREWGO_POSTGRES_DSN environment variable when empty.
	PostgresDSN string `yaml:"postgres_dsn,omitempty"`
}

// DefaultConfig returns the zero-deployment configuration: in-memory
// specialization cache, no tracing, default separator.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageBackendMemory,
	}
}

// LoadConfigFile reads and parses a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigLoadError(path, err)
	}
	return LoadConfig(path, data)
}

// LoadConfig parses YAML configuration bytes already read from path
// (path is used only for error metadata).
func LoadConfig(path string, data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigParseError(path, err)
	}
	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = os.Getenv(EnvPostgresDSN)
	}
	return cfg, nil
}
