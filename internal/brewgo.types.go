package internal

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Reserved type tokens recognized by StrToType.
const (
	TypeTokenInt    = "int"
	TypeTokenString = "string"
	TypeTokenBool   = "bool"
	TypeTokenNull   = "null"
	TypeTokenVoid   = "void"
)

// Canonical primitive type names, as distinct from the source tokens that
// denote them (void parses to Nothing, but Nothing's own textual form is
// "nothing", matching the original interpreter's asymmetric mapping).
const (
	TypeInt     = "int"
	TypeString  = "string"
	TypeBool    = "bool"
	TypeNull    = "null"
	TypeNothing = "nothing"
	// TypeClass is the abstract root of every class and template
	// instantiation type; it has no super type of its own.
	TypeClass = "class"
)

// DefaultTypeSeparator is the default character joining a template's mangled name to its
// type arguments: Base@A1@A2. Configurable per Interpreter via
// WithTypeSeparator so a host can pick a different character without
// touching the evaluator.
const DefaultTypeSeparator = "@"

func isPrimitive(t string) bool {
	switch t {
	case TypeInt, TypeString, TypeBool, TypeNull, TypeNothing:
		return true
	default:
		return false
	}
}

// noSuper marks the root CLASS type in the class registry: it has no
// further parent.
const noSuper = ""

// TypeRegistry holds the class hierarchy (name -> direct super) and the
// template registry (name -> arity) for one interpreter run. It is guarded
// by a mutex so a host embedding multiple concurrent Interpreters never
// corrupts shared state, even though the evaluator itself runs
// single-threaded per program.
type TypeRegistry struct {
	mu        sync.RWMutex
	classes   map[string]string // class name -> direct super name (noSuper for CLASS)
	templates map[string]int    // template name -> arity
	separator string
	logger    *zap.Logger
}

// NewTypeRegistry creates an empty registry seeded with the CLASS root.
func NewTypeRegistry(separator string, logger *zap.Logger) *TypeRegistry {
	if separator == "" {
		separator = DefaultTypeSeparator
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TypeRegistry{
		classes:   map[string]string{TypeClass: noSuper},
		templates: make(map[string]int),
		separator: separator,
		logger:    logger,
	}
}

// DefinesClass reports whether a class (or the CLASS root) is registered.
func (r *TypeRegistry) DefinesClass(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classes[name]
	return ok
}

// DefinesTemplate reports whether a template name is registered.
func (r *TypeRegistry) DefinesTemplate(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[name]
	return ok
}

// TemplateArity returns the registered arity of a template, or (0, false)
// if it is not registered.
func (r *TypeRegistry) TemplateArity(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	arity, ok := r.templates[name]
	return arity, ok
}

// RegisterClass registers a class name with its direct super, which must
// already be registered (classes or CLASS; no forward references).
func (r *TypeRegistry) RegisterClass(name, super string) Result[struct{}] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[name]; exists {
		return Err[struct{}](ErrType, "attempted duplicate definition of class "+name, 0)
	}
	if _, ok := r.classes[super]; !ok {
		return Err[struct{}](ErrType, "attempt to inherit from unknown type "+super, 0)
	}
	r.classes[name] = super
	r.logger.Debug("class registered", zap.String("class", name), zap.String("super", super))
	return Ok(struct{}{})
}

// RegisterTemplate registers a template name with its type-parameter count.
func (r *TypeRegistry) RegisterTemplate(name string, arity int) Result[struct{}] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[name]; exists {
		return Err[struct{}](ErrType, "attempted duplicate definition of template "+name, 0)
	}
	r.templates[name] = arity
	r.logger.Debug("template registered", zap.String("template", name), zap.Int("arity", arity))
	return Ok(struct{}{})
}

// GetSuper returns the direct super of a registered class name.
func (r *TypeRegistry) GetSuper(name string) Result[string] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	super, ok := r.classes[name]
	if !ok {
		return Err[string](ErrType, "no class named "+name+" found", 0)
	}
	return Ok(super)
}

// allSupers returns the set of all (transitive) supers of name, including
// CLASS but not name itself.
func (r *TypeRegistry) allSupers(name string) (map[string]bool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supers := make(map[string]bool)
	cur := name
	for {
		super, ok := r.classes[cur]
		if !ok {
			return nil, false
		}
		if super == noSuper {
			return supers, true
		}
		supers[super] = true
		cur = super
	}
}

// Clear resets the registry to its initial CLASS-only state, so a host
// embedding one Interpreter per request can reuse a TypeRegistry value
// without leaking class definitions across runs.
func (r *TypeRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = map[string]string{TypeClass: noSuper}
	r.templates = make(map[string]int)
}

// Separator returns the configured template-argument separator character.
func (r *TypeRegistry) Separator() string {
	return r.separator
}

// StrToType parses the textual type form from the source tree: the five
// reserved primitive tokens, a registered class name, or a mangled
// template instantiation whose base and every argument are themselves
// valid types.
func (r *TypeRegistry) StrToType(s string) Result[string] {
	switch s {
	case TypeTokenInt:
		return Ok(TypeInt)
	case TypeTokenString:
		return Ok(TypeString)
	case TypeTokenBool:
		return Ok(TypeBool)
	case TypeTokenNull:
		return Ok(TypeNull)
	case TypeTokenVoid:
		return Ok(TypeNothing)
	}

	if r.DefinesClass(s) {
		return Ok(s)
	}

	if strings.Contains(s, r.separator) {
		parts := strings.Split(s, r.separator)
		base, args := parts[0], parts[1:]
		arity, ok := r.TemplateArity(base)
		if !ok {
			return Err[string](ErrType, "invalid type "+s, 0)
		}
		if arity != len(args) {
			return Err[string](ErrType, "wrong number of type arguments for template "+base, 0)
		}
		for _, a := range args {
			if res := r.StrToType(a); !res.IsOk() {
				return Err[string](ErrType, "invalid type "+s, 0)
			}
		}
		return Ok(s)
	}

	return Err[string](ErrType, "invalid type "+s, 0)
}

// IsSubtype reports whether a is a (non-strict) subtype of b, per spec:
// reflexive, NULL is a subtype of every class/template type, and the
// registered super-chain otherwise.
func (r *TypeRegistry) IsSubtype(a, b string) bool {
	if a == b {
		return true
	}
	if a == TypeNull && (b == TypeClass || r.DefinesClass(b) || r.isTemplateInstantiation(b)) {
		return true
	}
	supers, ok := r.allSupers(a)
	if !ok {
		return false
	}
	return supers[b]
}

func (r *TypeRegistry) isTemplateInstantiation(t string) bool {
	if !strings.Contains(t, r.separator) {
		return false
	}
	base := strings.SplitN(t, r.separator, 2)[0]
	return r.DefinesTemplate(base)
}

// MangleTemplateName joins a template base name with its resolved type
// arguments, e.g. MangleTemplateName("Box", []string{"int"}) -> "Box@int".
func (r *TypeRegistry) MangleTemplateName(base string, args []string) string {
	return base + r.separator + strings.Join(args, r.separator)
}

// SplitTemplateName splits a mangled instantiation into its base name and
// argument type strings.
func (r *TypeRegistry) SplitTemplateName(mangled string) (string, []string) {
	parts := strings.Split(mangled, r.separator)
	return parts[0], parts[1:]
}
