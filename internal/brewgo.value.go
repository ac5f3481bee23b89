package internal

import (
	"strconv"
	"strings"
)

// Value pairs a dynamic type with its payload. Values are never
// type-checked against a declared type on their own -- that is the Field's
// job, per spec.md's explicit Field/Value split (Design Notes).
//
// Payload shapes by dynamic type:
//   - TypeInt: int
//   - TypeString: string
//   - TypeBool: bool
//   - TypeNothing: nil
//   - a class name or template instantiation: *Object, or nil for null
type Value struct {
	Type    string
	Payload any
}

// Set overwrites the receiver in place with the contents of other, the way
// original_source/value.py's Value.set mutates self rather than returning a
// new Value -- Field relies on this in-place semantics to update a value
// payload while keeping the surrounding Field's declared type untouched.
func (v *Value) Set(other Value) {
	v.Type = other.Type
	v.Payload = other.Payload
}

// AsObject returns the payload as an *Object, or nil if the value does not
// hold a live object reference (including the null value).
func (v Value) AsObject() *Object {
	obj, _ := v.Payload.(*Object)
	return obj
}

// IsNull reports whether v is the null reference: dynamic type CLASS (or a
// class/template type) with a nil payload.
func (v Value) IsNull() bool {
	return v.Payload == nil && v.Type != TypeInt && v.Type != TypeString && v.Type != TypeBool && v.Type != TypeNothing
}

// NewIntValue, NewStringValue and NewBoolValue construct literal Values
// directly, used by operator evaluation to build results.
func NewIntValue(n int) Value    { return Value{Type: TypeInt, Payload: n} }
func NewStringValue(s string) Value { return Value{Type: TypeString, Payload: s} }
func NewBoolValue(b bool) Value  { return Value{Type: TypeBool, Payload: b} }

// NewNullValue constructs the null reference value for the given class or
// template-instantiation type.
func NewNullValue(classType string) Value { return Value{Type: classType, Payload: nil} }

// NewObjectValue wraps a live object as a Value of its own class type.
func NewObjectValue(obj *Object) Value {
	if obj == nil {
		return NewNullValue(TypeClass)
	}
	return Value{Type: obj.ClassName, Payload: obj}
}

// CreateValue parses a source-literal atom into a Value: a quoted string
// literal, the boolean keywords, an optionally-signed integer literal, the
// null keyword, or the nothing keyword. Anything else is a NAME error, the
// way original_source/value.py's create_value falls through to Result.Err.
func CreateValue(atom string) Result[Value] {
	switch atom {
	case "true":
		return Ok(NewBoolValue(true))
	case "false":
		return Ok(NewBoolValue(false))
	case "null":
		return Ok(NewNullValue(TypeClass))
	case "nothing":
		return Ok(Value{Type: TypeNothing, Payload: nil})
	}

	if len(atom) >= 2 && strings.HasPrefix(atom, `"`) && strings.HasSuffix(atom, `"`) {
		return Ok(NewStringValue(strings.Trim(atom, `"`)))
	}

	if n, err := strconv.Atoi(atom); err == nil {
		return Ok(NewIntValue(n))
	}

	return Err[Value](ErrName, "invalid value "+atom, 0)
}

// GetDefaultValue returns the zero value for a declared type: 0, "", false,
// nothing's single value, or null for any class/template type. An unknown
// type name is a TYPE error, mirroring original_source/value.py's
// get_default_value fallthrough.
func GetDefaultValue(typ string, registry *TypeRegistry) Result[Value] {
	switch typ {
	case TypeInt:
		return Ok(NewIntValue(0))
	case TypeString:
		return Ok(NewStringValue(""))
	case TypeBool:
		return Ok(NewBoolValue(false))
	case TypeNothing:
		return Ok(Value{Type: TypeNothing, Payload: nil})
	}

	if typ == TypeClass || registry.DefinesClass(typ) || registry.isTemplateInstantiation(typ) {
		return Ok(NewNullValue(typ))
	}

	return Err[Value](ErrType, "no class named "+typ+" found", 0)
}
