package internal

// FieldDef is the parsed form of a `(field type name [value])` class
// member, grounded on original_source/classdef.py's FieldDef. The literal
// value atom is optional in source; when absent, ValueAtom is empty and
// Field construction falls back to the declared type's default, mirroring
// the original constructing a StringWithLineNumber of
// get_default_value_as_brewin_literal(type) as a stand-in initial value.
type FieldDef struct {
	Type      string
	Name      string
	ValueAtom string
	Line      int
}

// ParamDef is one formal parameter of a method: a declared type and a
// name, with no default value (Brewin parameters are always required).
type ParamDef struct {
	Type string
	Name string
}

// MethodDef is the parsed form of a `(method type name (params...) stmt)`
// class member, grounded on original_source/classdef.py's MethodDef.
type MethodDef struct {
	ReturnType string
	Name       string
	Params     []ParamDef
	Body       Node
	Line       int
}

// ClassDef is the parsed, not-yet-specialized form of a class: its name,
// its direct super, and its field/method members. Two-pass loading lets
// one class's field or method reference a class defined later in the same
// source, grounded on original_source/classdef.py's ClassDef together
// with interpreterv3.py's run() two-pass loop (register every class name
// and super first, only then extract members):
//
//  1. NewClassDef registers the class's name and super in the
//     TypeRegistry and stashes its unexamined body.
//  2. Extract, called only after every class in the program has completed
//     step 1, walks the body and builds FieldDefs/MethodDefs, so a field
//     or parameter type naming a class declared later in the source
//     already resolves.
type ClassDef struct {
	Name  string
	Super string
	Line  int

	body []Node

	FieldDefs  map[string]FieldDef
	MethodDefs []*MethodDef
}

const classInheritsKeyword = "inherits"

// NewClassDef registers name/super from a `(class Name [inherits Super]
// member...)` Node and returns the unextracted ClassDef. registry must
// already contain every super a program's classes name, including
// forward-referenced ones registered by an earlier call to NewClassDef in
// the same pass.
func NewClassDef(node Node, registry *TypeRegistry) Result[*ClassDef] {
	if node.Len() < 2 {
		return Err[*ClassDef](ErrSyntax, "malformed class definition", node.Line)
	}
	name := node.At(1).Atom

	cd := &ClassDef{Name: name, Line: node.Line, FieldDefs: map[string]FieldDef{}}

	bodyStart := 2
	super := TypeClass
	if node.Len() > 2 && node.At(2).Atom == classInheritsKeyword {
		super = node.At(3).Atom
		bodyStart = 4
	}
	cd.Super = super

	if res := registry.RegisterClass(name, super); !res.IsOk() {
		return Err[*ClassDef](res.Kind(), res.Message(), node.Line)
	}

	cd.body = node.Elements[bodyStart:]
	return Ok(cd)
}

const (
	memberField  = "field"
	memberMethod = "method"
)

// Extract walks the class body, building FieldDefs and MethodDefs and
// recording a name-collision NAME error or an unrecognized-keyword SYNTAX
// error, mirroring original_source/classdef.py's
// extract_field_and_method_defs.
func (cd *ClassDef) Extract(registry *TypeRegistry) Result[struct{}] {
	for _, member := range cd.body {
		switch member.Head() {
		case memberField:
			fd := parseFieldDef(member)
			if _, dup := cd.FieldDefs[fd.Name]; dup {
				return Err[struct{}](ErrName, "two or more definitions of field "+fd.Name, member.Line)
			}
			cd.FieldDefs[fd.Name] = fd

		case memberMethod:
			md := parseMethodDef(member)
			for _, existing := range cd.MethodDefs {
				if existing.Name == md.Name && sameParamTypes(existing.Params, md.Params) {
					return Err[struct{}](ErrName, "two or more definitions of method "+md.Name+" with the same parameter types", member.Line)
				}
			}
			cd.MethodDefs = append(cd.MethodDefs, md)

		default:
			return Err[struct{}](ErrSyntax, "invalid keyword "+member.Head()+" found in class "+cd.Name, member.Line)
		}
	}
	_ = registry
	return Ok(struct{}{})
}

func sameParamTypes(a, b []ParamDef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type {
			return false
		}
	}
	return true
}

func parseFieldDef(member Node) FieldDef {
	fd := FieldDef{Type: member.At(1).Atom, Name: member.At(2).Atom, Line: member.Line}
	if member.Len() > 3 {
		fd.ValueAtom = member.At(3).Atom
	}
	return fd
}

func parseMethodDef(member Node) MethodDef {
	md := MethodDef{ReturnType: member.At(1).Atom, Name: member.At(2).Atom, Line: member.Line}
	paramsNode := member.At(3)
	for _, pair := range paramsNode.Elements {
		md.Params = append(md.Params, ParamDef{Type: pair.At(0).Atom, Name: pair.At(1).Atom})
	}
	md.Body = member.At(4)
	return md
}
