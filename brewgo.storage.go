package brewgo

import (
	"github.com/brewgo/brewgo/internal"
)

// SpecializationStorage persists concretized template specializations
// keyed by mangled name, re-exported from internal so callers assembling
// a backend never need to import internal directly. Grounded on the
// teacher's TemplateStorage interface (prompty.storage.go), reduced to
// the three operations a mangled-name cache actually needs: CORE never
// lists, versions, or deletes a specialization, it only ever asks "have
// I concretized this exact instantiation before."
type SpecializationStorage = internal.SpecializationStorage

// OpenStorage builds the SpecializationStorage backend named by
// backend (one of the StorageBackend* constants), using cfg for any
// backend-specific settings. "memory" and "" both return a fresh
// MemoryStorage.
func OpenStorage(backend string, cfg *Config) (SpecializationStorage, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	switch backend {
	case "", StorageBackendMemory:
		return NewMemoryStorage(), nil
	case StorageBackendFilesystem:
		dir := cfg.FilesystemDir
		if dir == "" {
			dir = DefaultFilesystemStorageDir
		}
		return NewFilesystemStorage(dir)
	case StorageBackendPostgres:
		return NewPostgresStorage(PostgresConfig{ConnectionString: cfg.PostgresDSN, AutoMigrate: true})
	case StorageBackendCached:
		dir := cfg.FilesystemDir
		if dir == "" {
			dir = DefaultFilesystemStorageDir
		}
		backing, err := NewFilesystemStorage(dir)
		if err != nil {
			return nil, err
		}
		return NewCachedStorage(backing), nil
	default:
		return nil, NewStorageOpenError(backend, errUnknownStorageBackend(backend))
	}
}

type unknownStorageBackendError struct{ name string }

func (e *unknownStorageBackendError) Error() string {
	return "unknown specialization storage backend: " + e.name
}

func errUnknownStorageBackend(name string) error {
	return &unknownStorageBackendError{name: name}
}
