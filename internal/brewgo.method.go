package internal

// Method is a MethodDef whose return type and parameter types have been
// resolved against the TypeRegistry, ready for overload resolution and
// invocation. Grounded on original_source/method.py's Method
// (__extract_return_type, __extract_params_as_fields, matches_signature).
type Method struct {
	Def          *MethodDef
	ReturnType   string
	ParamFields  []Field
	DefiningClass string
}

// NewMethod resolves a MethodDef's return type and builds one Field per
// formal parameter (so parameter defaults and subtype checks reuse the
// exact Field machinery class fields use). A failure anywhere aborts with
// the first error encountered, mirroring the original's status
// short-circuiting.
func NewMethod(def *MethodDef, definingClass string, registry *TypeRegistry) Result[*Method] {
	retRes := registry.StrToType(def.ReturnType)
	if !retRes.IsOk() {
		return Err[*Method](retRes.Kind(), retRes.Message(), def.Line)
	}

	params := make([]Field, 0, len(def.Params))
	for _, p := range def.Params {
		f := FieldFromDef(registry, p.Name, p.Type, "", def.Line)
		if !f.Status.IsOk() {
			return Err[*Method](f.Status.Kind(), f.Status.Message(), f.Status.Line())
		}
		params = append(params, f)
	}

	return Ok(&Method{Def: def, ReturnType: retRes.Unwrap(), ParamFields: params, DefiningClass: definingClass})
}

// MatchesSignature reports whether this method can be called with
// arguments of the given dynamic types: same arity, and each argument
// type a subtype of the corresponding formal parameter's declared type.
// Grounded on original_source/method.py's matches_signature.
func (m *Method) MatchesSignature(registry *TypeRegistry, argTypes []string) bool {
	if len(m.ParamFields) != len(argTypes) {
		return false
	}
	for i, p := range m.ParamFields {
		if !p.CanBeSetTo(registry, argTypes[i]) {
			return false
		}
	}
	return true
}
