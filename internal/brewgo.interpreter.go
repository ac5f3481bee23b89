package internal

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// SpecializationStorage persists the concretized (pre-extraction) Node
// form of a specialized template class, keyed by its mangled name, so a
// second run sharing a persistent backend can skip re-concretizing an
// identical instantiation. Grounded on the teacher's TemplateStorage
// abstraction; concrete backends (memory/filesystem/Postgres/cached) live
// in the root package, since they pull in their own third-party drivers
// that CORE itself has no business depending on.
type SpecializationStorage interface {
	Get(mangledName string) (Node, bool, error)
	Put(mangledName string, classNode Node) error
	Close() error
}

// mainClassName and mainMethodName name the program's entry point,
// grounded on spec.md §6 Entry Point / interpreterv3.py's MAIN_CLASS_DEF
// and MAIN_FUNC_DEF.
const (
	mainClassName  = "main"
	mainMethodName = "main"
)

// Interpreter owns the registries and drives one program run: two-pass
// class loading, template specialization (at most once per mangled
// name), and entry-point dispatch. Grounded on
// original_source/interpreterv3.py's Interpreter (run,
// __define_class/__define_tclass, instantiate_class).
type Interpreter struct {
	Types  *TypeRegistry
	Host   HostEnvironment
	Logger *zap.Logger
	Trace  bool
	Storage SpecializationStorage

	classDefs   map[string]*ClassDef
	tclassDefs  map[string]*TClassDef
	specMu      sync.Mutex
	instanceSeq atomic.Int64
}

// NewInterpreter constructs an Interpreter. host, logger and separator
// follow the same zero-value-safe defaults as the rest of the CORE:
// host must be supplied by the caller (there is no meaningful no-op
// host), logger defaults to zap.NewNop(), separator defaults to "@".
func NewInterpreter(host HostEnvironment, logger *zap.Logger, separator string, storage SpecializationStorage) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{
		Types:      NewTypeRegistry(separator, logger),
		Host:       host,
		Logger:     logger,
		Storage:    storage,
		classDefs:  make(map[string]*ClassDef),
		tclassDefs: make(map[string]*TClassDef),
	}
}

func (interp *Interpreter) nextInstanceID() int {
	return int(interp.instanceSeq.Add(1))
}

// Run loads every class/tclass in program (two-pass), instantiates main,
// and executes its main method. An EXCEPTION status escaping main
// terminates the run normally rather than surfacing as a Go error,
// matching original_source/interpreterv3.py's BrewinException handling
// (spec.md §4.9, SPEC_FULL.md §1.1). Any other abort reaches the host via
// HostEnvironment.Error before Run returns.
func (interp *Interpreter) Run(program []Node) {
	sig := runProtected(func() {
		interp.loadProgram(program)
		mainObj := interp.InstantiateClass(mainClassName, 0)
		outcome := mainObj.ExecuteMethod(mainMethodName, nil, 0, nil)
		if interp.Trace {
			interp.Logger.Debug("main returned",
				zap.Int("status", int(outcome.Status)),
				zap.String("declared_type", outcome.Field.DeclaredType))
		}
	})
	if sig != nil {
		interp.Logger.Debug("run aborted", zap.String("kind", sig.kind.String()), zap.String("message", sig.message))
	}
}

// Load runs only the two-pass class/tclass registration step, without
// instantiating or executing main. It exists for callers that want to
// check a program for SYNTAX/NAME/TYPE errors (spec.md §4.9's static
// checks) without running it, such as a CLI's validate subcommand.
func (interp *Interpreter) Load(program []Node) {
	runProtected(func() {
		interp.loadProgram(program)
	})
}

func (interp *Interpreter) loadProgram(program []Node) {
	var pendingClasses []*ClassDef

	// Pass 1: register every class name and super, and every templated
	// class header, so a forward reference in pass 2 already resolves.
	for _, form := range program {
		switch form.Head() {
		case "class":
			res := NewClassDef(form, interp.Types)
			if !res.IsOk() {
				abort(interp.Host, res.Kind(), res.Message(), res.Line())
			}
			cd := res.Unwrap()
			interp.classDefs[cd.Name] = cd
			pendingClasses = append(pendingClasses, cd)
			interp.Logger.Debug("class registered", zap.String("class", cd.Name), zap.String("super", cd.Super))

		case "tclass":
			res := NewTClassDef(form, interp.Types)
			if !res.IsOk() {
				abort(interp.Host, res.Kind(), res.Message(), res.Line())
			}
			tcd := res.Unwrap()
			interp.tclassDefs[tcd.Name] = tcd
			interp.Logger.Debug("template registered", zap.String("template", tcd.Name), zap.Int("arity", len(tcd.TypeParams)))

		default:
			abort(interp.Host, ErrSyntax, "expected class or tclass, found "+form.Head(), form.Line)
		}
	}

	// Pass 2: extract fields/methods now that every class/template name
	// in the program is known.
	for _, cd := range pendingClasses {
		if res := cd.Extract(interp.Types); !res.IsOk() {
			abort(interp.Host, res.Kind(), res.Message(), res.Line())
		}
	}

	if _, ok := interp.classDefs[mainClassName]; !ok {
		abort(interp.Host, ErrName, "no main class found", 0)
	}
}

// InstantiateClass builds a fresh Object of the given type, specializing
// a template instantiation on first use. Grounded on
// original_source/interpreterv3.py's instantiate_class.
func (interp *Interpreter) InstantiateClass(name string, line int) *Object {
	if cd, ok := interp.classDefs[name]; ok {
		return NewObject(interp, cd)
	}
	if !interp.Types.isTemplateInstantiation(name) {
		abort(interp.Host, ErrName, "no class named "+name+" found", line)
	}
	cd := interp.specializeTemplate(name, line)
	return NewObject(interp, cd)
}

// specializeTemplate concretizes a template instantiation at most once
// per mangled name per process, consulting and populating Storage (when
// configured) so repeated runs against a persistent backend skip
// re-concretizing an identical instantiation -- spec.md §4.3's
// correctness requirement and spec.md §8's Template idempotence
// property, grounded on original_source/tclassdef.py's
// convert_to_class_def plus the teacher's TemplateStorage pattern.
func (interp *Interpreter) specializeTemplate(mangled string, line int) *ClassDef {
	interp.specMu.Lock()
	defer interp.specMu.Unlock()

	if cd, ok := interp.classDefs[mangled]; ok {
		return cd
	}

	classNode, fromCache := interp.loadSpecializationFromStorage(mangled)
	if !fromCache {
		base, _ := interp.Types.SplitTemplateName(mangled)
		tcd, ok := interp.tclassDefs[base]
		if !ok {
			abort(interp.Host, ErrName, "no templated class named "+base+" found", line)
		}
		res := tcd.ConcretizeToClassDef(mangled, interp.Types)
		if !res.IsOk() {
			abort(interp.Host, res.Kind(), res.Message(), res.Line())
		}
		classNode = res.Unwrap()
		interp.storeSpecialization(mangled, classNode)
	}

	cdRes := NewClassDef(classNode, interp.Types)
	if !cdRes.IsOk() {
		abort(interp.Host, cdRes.Kind(), cdRes.Message(), cdRes.Line())
	}
	cd := cdRes.Unwrap()
	if res := cd.Extract(interp.Types); !res.IsOk() {
		abort(interp.Host, res.Kind(), res.Message(), res.Line())
	}

	interp.classDefs[mangled] = cd
	interp.Logger.Debug("template specialized", zap.String("mangled", mangled), zap.Bool("cache_hit", fromCache))
	return cd
}

func (interp *Interpreter) loadSpecializationFromStorage(mangled string) (Node, bool) {
	if interp.Storage == nil {
		return Node{}, false
	}
	node, ok, err := interp.Storage.Get(mangled)
	if err != nil {
		interp.Logger.Warn("specialization cache read failed", zap.String("mangled", mangled), zap.Error(err))
		return Node{}, false
	}
	return node, ok
}

func (interp *Interpreter) storeSpecialization(mangled string, node Node) {
	if interp.Storage == nil {
		return
	}
	if err := interp.Storage.Put(mangled, node); err != nil {
		interp.Logger.Warn("specialization cache store failed", zap.String("mangled", mangled), zap.Error(err))
	}
}
