package internal

import "strings"

// Statement and expression keyword tags, shared by the statement
// evaluator, the expression evaluator and the template concretization
// walk below so all three dispatch on the same literal set.
const (
	stmtBegin   = "begin"
	stmtSet     = "set"
	stmtIf      = "if"
	stmtWhile   = "while"
	stmtCall    = "call"
	stmtReturn  = "return"
	stmtInputi  = "inputi"
	stmtInputs  = "inputs"
	stmtPrint   = "print"
	stmtLet     = "let"
	stmtThrow   = "throw"
	stmtTry     = "try"
	exprNew     = "new"
)

// TClassDef is the parsed, uninstantiated form of a `(tclass Name
// (params...) member...)` template class, grounded on
// original_source/tclassdef.py's TClassDef. Concretization never reparses
// source text: it transforms the already-parsed member Nodes in place,
// substituting every occurrence of a type-parameter name in a type
// position, then hands the result to NewClassDef/ClassDef.Extract exactly
// as if a user had written the concrete class by hand.
type TClassDef struct {
	Name       string
	TypeParams []string
	Body       []Node
	Line       int
}

// NewTClassDef parses and registers a template class header. Duplicate
// type-parameter names are a NAME error, mirroring the original's
// duplicate-name check.
func NewTClassDef(node Node, registry *TypeRegistry) Result[*TClassDef] {
	if node.Len() < 3 {
		return Err[*TClassDef](ErrSyntax, "malformed templated class definition", node.Line)
	}
	name := node.At(1).Atom

	paramsNode := node.At(2)
	params := make([]string, 0, paramsNode.Len())
	seen := make(map[string]bool, paramsNode.Len())
	for _, p := range paramsNode.Elements {
		if seen[p.Atom] {
			return Err[*TClassDef](ErrName, "duplicate type parameter names in definition of templated class "+name, node.Line)
		}
		seen[p.Atom] = true
		params = append(params, p.Atom)
	}

	if err := node.membershipSyntaxCheck(); !err.IsOk() {
		return Err[*TClassDef](err.Kind(), err.Message(), err.Line())
	}

	if res := registry.RegisterTemplate(name, len(params)); !res.IsOk() {
		return Err[*TClassDef](res.Kind(), res.Message(), node.Line)
	}

	return Ok(&TClassDef{Name: name, TypeParams: params, Body: node.Elements[3:], Line: node.Line})
}

// membershipSyntaxCheck rejects an `inherits` clause in a tclass form:
// original_source/tclassdef.py's grammar has no such production at all, so
// brewgo treats one as a SYNTAX error rather than silently accepting or
// ignoring it (spec.md §9 Open Question, resolved in SPEC_FULL.md §1.1).
// Both a bare `inherits` atom after the type-parameter list and a member
// form that has `inherits` among its elements are rejected.
func (n Node) membershipSyntaxCheck() Result[struct{}] {
	for i, member := range n.Elements {
		if i < 3 {
			continue
		}
		if member.Atom == classInheritsKeyword {
			return Err[struct{}](ErrSyntax, "templated class may not use inherits", member.Line)
		}
		for _, e := range member.Elements {
			if e.Atom == classInheritsKeyword {
				return Err[struct{}](ErrSyntax, "templated class may not use inherits", member.Line)
			}
		}
	}
	return Ok(struct{}{})
}

// ConcretizeToClassDef instantiates this template at the given mangled
// type (e.g. "Box@int"), producing a `class` Node ready for
// NewClassDef/Extract. Grounded on
// original_source/tclassdef.py's convert_to_class_def.
func (t *TClassDef) ConcretizeToClassDef(instantiatedType string, registry *TypeRegistry) Result[Node] {
	_, typeArgs := registry.SplitTemplateName(instantiatedType)
	if len(typeArgs) != len(t.TypeParams) {
		return Err[Node](ErrType, "attempted to instantiate templated class "+t.Name+" with wrong number of type arguments", t.Line)
	}

	mapping := make(map[string]string, len(t.TypeParams))
	for i, param := range t.TypeParams {
		argRes := registry.StrToType(typeArgs[i])
		if !argRes.IsOk() {
			return Err[Node](argRes.Kind(), argRes.Message(), t.Line)
		}
		mapping[param] = argRes.Unwrap()
	}

	members := make([]Node, 0, len(t.Body))
	for _, member := range t.Body {
		var newMember Node
		switch member.Head() {
		case memberField:
			newMember = t.concretizeFieldDef(member, mapping)
		case memberMethod:
			newMember = t.concretizeMethodDef(member, mapping)
		default:
			return Err[Node](ErrSyntax, "invalid keyword "+member.Head()+" found in templated class "+t.Name, member.Line)
		}
		members = append(members, newMember)
	}

	header := []Node{NewAtom("class", t.Line), NewAtom(instantiatedType, t.Line)}
	return Ok(NewList(append(header, members...)...))
}

func (t *TClassDef) concretizeTypeString(typeString string, mapping map[string]string, line int) string {
	parts := strings.Split(typeString, "@")
	name := parts[0]
	if mapped, ok := mapping[name]; ok {
		name = mapped
	}
	args := parts[1:]
	for i, a := range args {
		if mapped, ok := mapping[a]; ok {
			args[i] = mapped
		}
	}
	if len(args) == 0 {
		return name
	}
	return name + "@" + strings.Join(args, "@")
}

func (t *TClassDef) concretizeFieldDef(def Node, mapping map[string]string) Node {
	newType := NewAtom(t.concretizeTypeString(def.At(1).Atom, mapping, def.Line), def.At(1).Line)
	if def.Len() == 4 {
		newVal := t.concretizeExpression(def.At(3), mapping)
		return NewList(def.At(0), newType, def.At(2), newVal)
	}
	return NewList(def.At(0), newType, def.At(2))
}

func (t *TClassDef) concretizeMethodDef(def Node, mapping map[string]string) Node {
	newType := NewAtom(t.concretizeTypeString(def.At(1).Atom, mapping, def.Line), def.At(1).Line)

	paramsNode := def.At(3)
	newParams := make([]Node, 0, paramsNode.Len())
	for _, pair := range paramsNode.Elements {
		concretizedType := NewAtom(t.concretizeTypeString(pair.At(0).Atom, mapping, def.Line), pair.At(0).Line)
		newParams = append(newParams, NewList(concretizedType, pair.At(1)))
	}

	newStmt := t.concretizeStatement(def.At(4), mapping)
	return NewList(def.At(0), newType, def.At(2), NewList(newParams...), newStmt)
}

func (t *TClassDef) concretizeStatement(stmt Node, mapping map[string]string) Node {
	if stmt.IsAtom() {
		return stmt
	}

	switch stmt.Head() {
	case stmtBegin:
		out := []Node{stmt.At(0)}
		for _, s := range stmt.Tail() {
			out = append(out, t.concretizeStatement(s, mapping))
		}
		return NewList(out...)

	case stmtSet:
		newExpr := t.concretizeExpression(stmt.At(2), mapping)
		return NewList(stmt.At(0), stmt.At(1), newExpr)

	case stmtIf:
		cond := t.concretizeExpression(stmt.At(1), mapping)
		ifBlock := t.concretizeStatement(stmt.At(2), mapping)
		if stmt.Len() == 4 {
			elseBlock := t.concretizeStatement(stmt.At(3), mapping)
			return NewList(stmt.At(0), cond, ifBlock, elseBlock)
		}
		return NewList(stmt.At(0), cond, ifBlock)

	case stmtWhile:
		cond := t.concretizeExpression(stmt.At(1), mapping)
		body := t.concretizeStatement(stmt.At(2), mapping)
		return NewList(stmt.At(0), cond, body)

	case stmtCall:
		callingObj := t.concretizeExpression(stmt.At(1), mapping)
		out := []Node{stmt.At(0), callingObj, stmt.At(2)}
		for _, arg := range stmt.Elements[3:] {
			out = append(out, t.concretizeExpression(arg, mapping))
		}
		return NewList(out...)

	case stmtReturn:
		if stmt.Len() == 1 {
			return stmt
		}
		return NewList(stmt.At(0), t.concretizeExpression(stmt.At(1), mapping))

	case stmtInputi, stmtInputs:
		return stmt

	case stmtPrint:
		out := []Node{stmt.At(0)}
		for _, arg := range stmt.Tail() {
			out = append(out, t.concretizeExpression(arg, mapping))
		}
		return NewList(out...)

	case stmtThrow:
		return NewList(stmt.At(0), t.concretizeExpression(stmt.At(1), mapping))

	case stmtTry:
		tryBlock := t.concretizeStatement(stmt.At(1), mapping)
		catchBlock := t.concretizeStatement(stmt.At(2), mapping)
		return NewList(stmt.At(0), tryBlock, catchBlock)

	case stmtLet:
		return t.concretizeLet(stmt, mapping)

	default:
		return stmt
	}
}

func (t *TClassDef) concretizeLet(stmt Node, mapping map[string]string) Node {
	// (let ((type name [val]) ...) stmt1 stmt2 ...)
	assignments := stmt.At(1)
	newAssignments := make([]Node, 0, assignments.Len())
	for _, a := range assignments.Elements {
		newType := NewAtom(t.concretizeTypeString(a.At(0).Atom, mapping, a.Line), a.At(0).Line)
		rest := a.Elements[1:]
		newAssignments = append(newAssignments, NewList(append([]Node{newType}, rest...)...))
	}

	out := []Node{stmt.At(0), NewList(newAssignments...)}
	for _, s := range stmt.Elements[2:] {
		out = append(out, t.concretizeStatement(s, mapping))
	}
	return NewList(out...)
}

func (t *TClassDef) concretizeExpression(expr Node, mapping map[string]string) Node {
	if expr.IsAtom() {
		return expr
	}

	op := expr.Head()

	if isOperator(op) {
		out := []Node{expr.At(0)}
		for _, arg := range expr.Tail() {
			out = append(out, t.concretizeExpression(arg, mapping))
		}
		return NewList(out...)
	}

	if op == exprNew {
		newType := NewAtom(t.concretizeTypeString(expr.At(1).Atom, mapping, expr.Line), expr.At(1).Line)
		return NewList(expr.At(0), newType)
	}

	if op == stmtCall {
		return t.concretizeStatement(expr, mapping)
	}

	return expr
}
