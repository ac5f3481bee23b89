package brewgo

// Storage backend name constants, used in error metadata and the CLI's
// --storage flag.
const (
	StorageBackendMemory     = "memory"
	StorageBackendFilesystem = "filesystem"
	StorageBackendPostgres   = "postgres"
	StorageBackendCached     = "cached"
)

// DefaultFilesystemStorageDir is the default root directory a
// FilesystemStorage backend writes concretized specializations under
// when no directory is configured explicitly.
const DefaultFilesystemStorageDir = "./brewgo-specializations"

// Environment variable names read by LoadConfig for values a YAML file
// typically leaves to deployment (connection strings, feature flags).
const (
	EnvPostgresDSN = "BREWGO_POSTGRES_DSN"
)
