package brewgo

import (
	"errors"

	"go.uber.org/zap"

	"github.com/brewgo/brewgo/internal"
)

// Engine is the host-facing entry point: it owns the type registry and
// drives one program run over a HostEnvironment, wrapping
// internal.Interpreter the way the teacher's Engine wraps its
// internal.Executor (prompty.engine.go). Unlike the teacher, an Engine
// is single-use: Brewin's class/template registries and instance-id
// sequence are reset by constructing a new Engine per program, rather
// than by a Clear-and-reuse call, since a language runtime's identity
// state should never leak across unrelated programs.
type Engine struct {
	interp *internal.Interpreter
	config *engineConfig
	logger *zap.Logger
}

// ErrHostRequired is returned by New when no HostEnvironment was
// supplied via WithHost. There is no meaningful default: every program
// needs somewhere to send print/getInput/terminal-error traffic.
var ErrHostRequired = errors.New("brewgo: a HostEnvironment is required (use WithHost)")

// New constructs an Engine from the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.host == nil {
		return nil, ErrHostRequired
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	interp := internal.NewInterpreter(config.host, logger, config.separator, config.storage)
	interp.Trace = config.trace

	return &Engine{interp: interp, config: config, logger: logger}, nil
}

// MustNew constructs an Engine and panics on error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Run loads program (every top-level class/tclass form) and executes
// its main class's main method. A terminal SYNTAX/NAME/TYPE/FAULT abort
// is reported to the configured HostEnvironment's Error method; Run
// itself never returns a Go error for an in-language failure, matching
// the teacher's pattern of surfacing domain errors through the engine's
// own error-reporting seam rather than a return value, since a FAULT
// discovered mid-run has already been delivered to the host by the time
// Run could return.
func (e *Engine) Run(program []Node) {
	e.interp.Run(program)
}

// TypeSeparator returns the character joining a template's mangled name
// to its type arguments, as configured for this Engine.
func (e *Engine) TypeSeparator() string {
	return e.interp.Types.Separator()
}

// ValidationResult reports whether a program's class/tclass definitions
// loaded without a SYNTAX/NAME/TYPE error, and the first such error if
// not. It never runs main, so it cannot surface a FAULT -- faults are a
// property of a specific execution, not of the static definitions.
type ValidationResult struct {
	Valid   bool
	Kind    string
	Message string
	Line    int
}

// Validate loads program's class/tclass definitions against a scratch
// Interpreter sharing this Engine's separator and storage, without
// instantiating or executing main, and reports the first error
// encountered. Grounded on the teacher's Engine.Validate-without-Execute
// pattern for a dry-run CLI subcommand (cmd/prompty's validate command).
func (e *Engine) Validate(program []Node) ValidationResult {
	host := NewBufferedHost()
	scratch := internal.NewInterpreter(host, e.logger, e.interp.Types.Separator(), e.config.storage)
	scratch.Load(program)

	if host.LastError == nil {
		return ValidationResult{Valid: true}
	}
	return ValidationResult{
		Valid:   false,
		Kind:    host.LastError.Kind.String(),
		Message: host.LastError.Message,
		Line:    host.LastError.Line,
	}
}
