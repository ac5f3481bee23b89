package internal

// Field is a named, statically-typed storage slot: a class field, a
// parameter binding, or a let-declared local. It keeps its declared type
// separate from the dynamic type of the Value currently stored in it, per
// spec.md's Field/Value split -- a Field's declared type never changes
// after construction; only the Value it holds may be replaced by another
// Value whose dynamic type is a subtype of the declared type.
//
// Status records the first error encountered while building or assigning
// this Field; once set, further mutations are no-ops, mirroring
// original_source/field.py's short-circuiting status field so a single
// malformed field definition doesn't cascade into spurious follow-on
// errors.
type Field struct {
	Name         string
	DeclaredType string
	Value        Value
	Status       Result[struct{}]
}

// NewField constructs a Field already holding value, without re-deriving
// the default -- used for parameter bindings and for fields that already
// resolved a concrete Value.
func NewField(name, declaredType string, value Value) Field {
	return Field{Name: name, DeclaredType: declaredType, Value: value, Status: Ok(struct{}{})}
}

// FieldFromDef builds a Field from a parsed field/parameter declaration --
// a type token and a literal-or-default initial value atom -- resolving
// both through the registry, grounded on
// original_source/field.py's Field.from_field_def +
// __set_to_field_def.
func FieldFromDef(registry *TypeRegistry, name, typeToken, valueAtom string, line int) Field {
	f := Field{Name: name, Status: Ok(struct{}{})}

	typeRes := registry.StrToType(typeToken)
	if !typeRes.IsOk() {
		f.Status = Err[struct{}](typeRes.Kind(), typeRes.Message(), line)
		return f
	}
	declaredType := typeRes.Unwrap()

	var valueRes Result[Value]
	if valueAtom == "" {
		valueRes = GetDefaultValue(declaredType, registry)
	} else {
		valueRes = CreateValue(valueAtom)
	}
	if !valueRes.IsOk() {
		f.Status = Err[struct{}](valueRes.Kind(), valueRes.Message(), line)
		return f
	}
	value := valueRes.Unwrap()

	if !registry.IsSubtype(value.Type, declaredType) {
		f.Status = Err[struct{}](ErrType, "type mismatch in definition of field "+name, line)
		return f
	}

	f.DeclaredType = declaredType
	f.Value = value
	return f
}

// FieldFromValue wraps an already-computed Value as a Field declared at
// the Value's own dynamic type -- used for expression results and return
// values that don't carry a separate declared type of their own.
func FieldFromValue(value Value, name string) Field {
	return NewField(name, value.Type, value)
}

// CanBeSetTo reports whether a Value of dynamic type typ may be assigned
// into this field without violating its declared type.
func (f *Field) CanBeSetTo(registry *TypeRegistry, typ string) bool {
	return registry.IsSubtype(typ, f.DeclaredType)
}

// SetToField copies another field's value into this one, type-checking
// the other field's declared type (not its current value's dynamic type)
// against this field's declared type, mirroring
// original_source/field.py's set_to_field.
func (f *Field) SetToField(registry *TypeRegistry, other Field, line int) {
	if !f.Status.IsOk() {
		return
	}
	if !registry.IsSubtype(other.DeclaredType, f.DeclaredType) {
		f.Status = Err[struct{}](ErrType, "type mismatch while setting "+f.Name, line)
		return
	}
	f.SetToValue(registry, other.Value, line)
}

// SetToValue assigns value into this field, type-checking its dynamic
// type against the declared type. The declared type never changes.
func (f *Field) SetToValue(registry *TypeRegistry, value Value, line int) {
	if !f.Status.IsOk() {
		return
	}
	if !registry.IsSubtype(value.Type, f.DeclaredType) {
		f.Status = Err[struct{}](ErrType, "type mismatch while setting "+f.Name, line)
		return
	}
	f.Value.Set(value)
}
