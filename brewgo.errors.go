package brewgo

import (
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/brewgo/brewgo/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS).
const (
	ErrMsgSyntax       = "syntax error in program tree"
	ErrMsgName         = "name resolution failed"
	ErrMsgType         = "type error"
	ErrMsgFault        = "runtime fault"
	ErrMsgConfigLoad   = "failed to load configuration"
	ErrMsgConfigParse  = "failed to parse configuration"
	ErrMsgStorageRead  = "specialization storage read failed"
	ErrMsgStorageWrite = "specialization storage write failed"
	ErrMsgStorageOpen  = "failed to open specialization storage backend"
)

// Error code constants for categorization.
const (
	ErrCodeSyntax  = "BREWGO_SYNTAX"
	ErrCodeName    = "BREWGO_NAME"
	ErrCodeType    = "BREWGO_TYPE"
	ErrCodeFault   = "BREWGO_FAULT"
	ErrCodeConfig  = "BREWGO_CONFIG"
	ErrCodeStorage = "BREWGO_STORAGE"
)

// Metadata keys attached to RunError and storage/config errors via
// WithMetadata.
const (
	MetaKeyLine    = "line"
	MetaKeyKind    = "kind"
	MetaKeyPath    = "path"
	MetaKeyBackend = "backend"
	MetaKeyDetail  = "detail"
)

// NewRunError wraps a terminal abort reported by the evaluator (the same
// four kinds an interpreter HostEnvironment.Error receives: SYNTAX,
// NAME, TYPE, FAULT) into a go-cuserr CustomError, so an Engine caller
// gets the same structured-error shape the rest of this module's
// ambient stack uses rather than a bare string.
func NewRunError(kind internal.ErrorKind, message string, line int) error {
	code, msg := errCodeAndMsg(kind)
	return cuserr.NewValidationError(code, msg).
		WithMetadata(MetaKeyKind, kind.String()).
		WithMetadata(MetaKeyLine, strconv.Itoa(line)).
		WithMetadata(MetaKeyDetail, message)
}

func errCodeAndMsg(kind internal.ErrorKind) (string, string) {
	switch kind {
	case internal.ErrSyntax:
		return ErrCodeSyntax, ErrMsgSyntax
	case internal.ErrName:
		return ErrCodeName, ErrMsgName
	case internal.ErrType:
		return ErrCodeType, ErrMsgType
	case internal.ErrFault:
		return ErrCodeFault, ErrMsgFault
	default:
		return ErrCodeFault, ErrMsgFault
	}
}

// NewConfigLoadError wraps a configuration-file read failure.
func NewConfigLoadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigLoad).
		WithMetadata(MetaKeyPath, path)
}

// NewConfigParseError wraps a YAML unmarshal failure.
func NewConfigParseError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigParse).
		WithMetadata(MetaKeyPath, path)
}

// NewStorageOpenError wraps a specialization-storage backend open failure
// (e.g. a Postgres connection refused, a filesystem root that cannot be
// created).
func NewStorageOpenError(backend string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeStorage, ErrMsgStorageOpen).
		WithMetadata(MetaKeyBackend, backend)
}

// NewStorageReadError wraps a specialization-storage Get failure.
func NewStorageReadError(backend string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeStorage, ErrMsgStorageRead).
		WithMetadata(MetaKeyBackend, backend)
}

// NewStorageWriteError wraps a specialization-storage Put failure.
func NewStorageWriteError(backend string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeStorage, ErrMsgStorageWrite).
		WithMetadata(MetaKeyBackend, backend)
}
