package internal

import (
	"strconv"
	"strings"
)

const (
	tokenMe    = "me"
	tokenSuper = "super"
)

// Object is a live instance of a ClassDef: its own fields, its resolved,
// overload-ready methods, and (unless its class inherits directly from
// CLASS) a separate Object representing the instance's super-class
// portion, grounded on original_source/brewin_object.py's Object.
//
// Each level of an inheritance chain is modeled as its own exclusively-
// owned Object, chained through Super -- the original's
// __possibly_instantiate_super discipline -- rather than one flattened
// field/method table, so a method defined on a super class only ever sees
// that class's own fields when it executes.
type Object struct {
	interp     *Interpreter
	ClassName  string
	InstanceID int
	Fields     map[string]*Field
	Methods    []*Method
	Super      *Object
}

// NewObject instantiates obj's own fields and methods from cd, then
// recursively instantiates its super-class portion (unless cd inherits
// directly from CLASS). The first field/method/super construction error
// aborts to the host, matching the original's aggregate `status` check.
func NewObject(interp *Interpreter, cd *ClassDef) *Object {
	obj := &Object{
		interp:     interp,
		ClassName:  cd.Name,
		InstanceID: interp.nextInstanceID(),
		Fields:     make(map[string]*Field, len(cd.FieldDefs)),
	}

	for name, fd := range cd.FieldDefs {
		f := FieldFromDef(interp.Types, fd.Name, fd.Type, fd.ValueAtom, fd.Line)
		if !f.Status.IsOk() {
			abort(interp.Host, f.Status.Kind(), f.Status.Message(), f.Status.Line())
		}
		fCopy := f
		obj.Fields[name] = &fCopy
	}

	for _, md := range cd.MethodDefs {
		m := NewMethod(md, cd.Name, interp.Types)
		if !m.IsOk() {
			abort(interp.Host, m.Kind(), m.Message(), m.Line())
		}
		obj.Methods = append(obj.Methods, m.Unwrap())
	}

	super := interp.Types.GetSuper(cd.Name).Unwrap()
	if super != TypeClass {
		obj.Super = interp.InstantiateClass(super, cd.Line)
	}

	return obj
}

// GetMethod searches obj's own methods for one matching name and
// argTypes by signature (spec.md §4.5 overload resolution: own class
// first, then recurse into the super chain; first declared match wins,
// no most-specific tie-breaking), grounded on
// original_source/brewin_object.py's get_method.
func (o *Object) GetMethod(name string, argTypes []string, line int) (*Object, *Method) {
	for _, m := range o.Methods {
		if m.Def.Name == name && m.MatchesSignature(o.interp.Types, argTypes) {
			return o, m
		}
	}
	if o.Super == nil {
		abort(o.interp.Host, ErrName, "no method "+name+" matches the calling signature", line)
	}
	return o.Super.GetMethod(name, argTypes, line)
}

// ExecuteMethod runs method name with the given already-evaluated
// argument fields, binding `me`, and always resolves the overload
// starting at o -- the caller (executeCallAux) is responsible for picking
// o appropriately: the original receiver for an external invocation or a
// `call me ...`, or specifically the super Object for a `call super ...`,
// so the latter can reach a base implementation without re-resolving
// straight back to the override that called it. When meOverride is nil,
// `me` is bound to o itself; when non-nil, `me` is passed through
// UNCHANGED -- it always denotes the original receiver, never the
// super-instance, regardless of which object dispatch itself starts at.
// Grounded on original_source/brewin_object.py's execute_method, adapted
// per SPEC_FULL.md §1.1's `me`/`call super` decision: the original rebinds
// `me` to the super instance on `call super` (and dispatches via
// whatever `me` currently denotes); this implementation keeps `me` fixed
// to the original receiver and instead threads the dispatch-start object
// through o itself, which is what keeps both `call me` (full virtual
// re-dispatch from the original receiver) and `call super` (bypass the
// override, start at the base class) correct at once.
func (o *Object) ExecuteMethod(name string, args []Field, line int, meOverride *Field) Outcome {
	env := NewEnvironment()
	argTypes := make([]string, len(args))
	for i, a := range args {
		argTypes[i] = a.Value.Type
	}

	// Dispatch always starts at o, the object this call actually targets:
	// the original receiver itself for an external/evaluated-expression
	// call or a `call me`, or specifically the super object for a `call
	// super` -- see executeCallAux, which is what picks o for each of the
	// three cases. What differs per case is only what `me` denotes inside
	// the invoked body.
	definingObj, method := o.GetMethod(name, argTypes, line)

	var meField Field
	if meOverride == nil {
		meField = FieldFromValue(NewObjectValue(o), tokenMe)
	} else {
		meField = *meOverride
	}
	env.Define(tokenMe, &meField)

	if len(method.ParamFields) != len(args) {
		abort(o.interp.Host, ErrSyntax, "wrong number of arguments to "+name, line)
	}
	for i, p := range method.ParamFields {
		if env.Contains(p.Name) {
			abort(o.interp.Host, ErrName, "duplicate formal parameter name "+p.Name, line)
		}
		bound := NewField(p.Name, p.DeclaredType, Value{Type: p.DeclaredType})
		bound.SetToValue(o.interp.Types, args[i].Value, line)
		if !bound.Status.IsOk() {
			abort(o.interp.Host, bound.Status.Kind(), bound.Status.Message(), bound.Status.Line())
		}
		env.Define(p.Name, &bound)
	}

	outcome := definingObj.executeStatement(env, method.Def.Body)
	if outcome.Status == StatusException {
		return outcome
	}

	ret := NewField("", method.ReturnType, Value{Type: method.ReturnType})
	if outcome.Field.DeclaredType == TypeNothing {
		defRes := GetDefaultValue(method.ReturnType, o.interp.Types)
		ret.Value = defRes.Unwrap()
		return Outcome{Status: StatusProceed, Field: ret}
	}

	if outcome.Status == StatusReturn {
		if !o.interp.Types.IsSubtype(outcome.Field.DeclaredType, method.ReturnType) {
			abort(o.interp.Host, ErrType, "mismatched types: expected "+method.ReturnType+" but got "+outcome.Field.DeclaredType, line)
		}
		ret.SetToValue(o.interp.Types, outcome.Field.Value, line)
		if !ret.Status.IsOk() {
			abort(o.interp.Host, ret.Status.Kind(), ret.Status.Message(), ret.Status.Line())
		}
	}

	return Outcome{Status: StatusProceed, Field: ret}
}

func (o *Object) executeStatement(env *Environment, stmt Node) Outcome {
	switch stmt.Head() {
	case stmtBegin:
		for _, s := range stmt.Tail() {
			out := o.executeStatement(env, s)
			if out.Status != StatusProceed {
				return out
			}
		}
		return proceed()

	case stmtSet:
		out := o.evaluateExpression(env, stmt.At(2))
		if out.Status == StatusException {
			return out
		}
		o.executeSetAux(env, stmt.At(1).Atom, out.Field, stmt.Line)
		return proceed()

	case stmtIf:
		cond := o.evaluateExpression(env, stmt.At(1))
		if cond.Status == StatusException {
			return cond
		}
		if cond.Field.Value.Type != TypeBool {
			abort(o.interp.Host, ErrType, "condition of if did not evaluate to a bool", stmt.Line)
		}
		if cond.Field.Value.Payload.(bool) {
			return o.executeStatement(env, stmt.At(2))
		}
		if stmt.Len() == 4 {
			return o.executeStatement(env, stmt.At(3))
		}
		return proceed()

	case stmtWhile:
		for {
			cond := o.evaluateExpression(env, stmt.At(1))
			if cond.Status == StatusException {
				return cond
			}
			if cond.Field.Value.Type != TypeBool {
				abort(o.interp.Host, ErrType, "condition of while did not evaluate to a bool", stmt.Line)
			}
			if !cond.Field.Value.Payload.(bool) {
				return proceed()
			}
			out := o.executeStatement(env, stmt.At(2))
			if out.Status != StatusProceed {
				return out
			}
		}

	case stmtCall:
		return o.executeCallAux(env, stmt)

	case stmtReturn:
		if stmt.Len() == 1 {
			return returning(NewField("", TypeNothing, Value{Type: TypeNothing}))
		}
		out := o.evaluateExpression(env, stmt.At(1))
		if out.Status == StatusException {
			return out
		}
		return returning(out.Field)

	case stmtInputi:
		n, err := strconv.Atoi(o.interp.Host.GetInput())
		if err != nil {
			n = 0
		}
		o.executeSetAux(env, stmt.At(1).Atom, FieldFromValue(NewIntValue(n), ""), stmt.Line)
		return proceed()

	case stmtInputs:
		o.executeSetAux(env, stmt.At(1).Atom, FieldFromValue(NewStringValue(o.interp.Host.GetInput()), ""), stmt.Line)
		return proceed()

	case stmtPrint:
		var sb strings.Builder
		for _, arg := range stmt.Tail() {
			out := o.evaluateExpression(env, arg)
			if out.Status == StatusException {
				return out
			}
			sb.WriteString(o.literalOf(out.Field.Value))
		}
		o.interp.Host.Output(sb.String())
		return proceed()

	case stmtLet:
		return o.executeLet(env, stmt)

	case stmtThrow:
		out := o.evaluateExpression(env, stmt.At(1))
		if out.Status == StatusException {
			return out
		}
		if out.Field.Value.Type != TypeString {
			abort(o.interp.Host, ErrType, "message of throw did not evaluate to a string", stmt.Line)
		}
		return raising(out.Field)

	case stmtTry:
		return o.executeTry(env, stmt)

	default:
		abort(o.interp.Host, ErrSyntax, "attempt to execute undefined statement "+stmt.Head(), stmt.Line)
		panic("unreachable")
	}
}

func (o *Object) executeLet(env *Environment, stmt Node) Outcome {
	env.PushScope()
	defer env.PopScope()

	assignments := stmt.At(1)
	seen := make(map[string]bool, assignments.Len())
	for _, a := range assignments.Elements {
		typeToken := a.At(0).Atom
		localName := a.At(1).Atom
		valueAtom := ""
		if a.Len() > 2 {
			valueAtom = a.At(2).Atom
		}
		if seen[localName] {
			abort(o.interp.Host, ErrName, "duplicate definition of local "+localName, stmt.Line)
		}
		seen[localName] = true

		f := FieldFromDef(o.interp.Types, localName, typeToken, valueAtom, stmt.Line)
		if !f.Status.IsOk() {
			abort(o.interp.Host, f.Status.Kind(), f.Status.Message(), stmt.Line)
		}
		fCopy := f
		env.Define(localName, &fCopy)
	}

	for _, s := range stmt.Elements[2:] {
		out := o.executeStatement(env, s)
		if out.Status != StatusProceed {
			return out
		}
	}
	return proceed()
}

func (o *Object) executeTry(env *Environment, stmt Node) Outcome {
	tryOut := o.executeStatement(env, stmt.At(1))
	if tryOut.Status == StatusException {
		env.PushScope()
		defer env.PopScope()
		exc := tryOut.Field
		env.Define("exception", &exc)
		catchOut := o.executeStatement(env, stmt.At(2))
		if catchOut.Status == StatusReturn || catchOut.Status == StatusException {
			return catchOut
		}
		return proceed()
	}
	if tryOut.Status == StatusReturn {
		return tryOut
	}
	return proceed()
}

func (o *Object) executeSetAux(env *Environment, varName string, newField Field, line int) {
	if newField.DeclaredType == TypeNothing {
		abort(o.interp.Host, ErrType, "attempt to assign a field to nothing", line)
	}

	var target *Field
	if env.Contains(varName) {
		target = env.Get(varName).Unwrap()
	} else if f, ok := o.Fields[varName]; ok {
		target = f
	} else {
		abort(o.interp.Host, ErrName, "attempt to set unknown field "+varName, line)
	}

	target.SetToField(o.interp.Types, newField, line)
	if !target.Status.IsOk() {
		abort(o.interp.Host, target.Status.Kind(), target.Status.Message(), target.Status.Line())
	}
}

func (o *Object) executeCallAux(env *Environment, expr Node) Outcome {
	line := expr.Line
	objToken := expr.At(1)

	var targetObj *Object
	var meField *Field

	switch objToken.Atom {
	case tokenMe:
		// `call me` re-dispatches virtually from the original receiver,
		// not from o (which, inside an inherited method body, is the
		// super-level Object actually running the statement) -- a Dog
		// reached through Animal.id()'s `call me kind` must still land on
		// Dog's own kind(), not Animal's.
		meField = env.Get(tokenMe).Unwrap()
		targetObj = meField.Value.AsObject()

	case tokenSuper:
		if o.Super == nil {
			abort(o.interp.Host, ErrType, "invalid call to super from class "+o.ClassName, line)
		}
		targetObj = o.Super
		meField = env.Get(tokenMe).Unwrap()

	default:
		out := o.evaluateExpression(env, objToken)
		if out.Status == StatusException {
			return out
		}
		if out.Field.Value.IsNull() {
			abort(o.interp.Host, ErrFault, "null dereference", line)
		}
		targetObj = out.Field.Value.AsObject()
		meField = nil
	}

	methodName := expr.At(2).Atom
	args := make([]Field, 0, expr.Len()-3)
	for _, argExpr := range expr.Elements[3:] {
		out := o.evaluateExpression(env, argExpr)
		if out.Status == StatusException {
			return out
		}
		args = append(args, out.Field)
	}

	return targetObj.ExecuteMethod(methodName, args, line, meField)
}

func (o *Object) evaluateExpression(env *Environment, expr Node) Outcome {
	if expr.IsAtom() {
		atom := expr.Atom

		if env.Contains(atom) {
			return Outcome{Status: StatusProceed, Field: *env.Get(atom).Unwrap()}
		}

		if atom == tokenSuper {
			if o.Super != nil {
				return Outcome{Status: StatusProceed, Field: FieldFromValue(NewObjectValue(o.Super), tokenSuper)}
			}
			abort(o.interp.Host, ErrType, "invalid call to super object", expr.Line)
		}

		if f, ok := o.Fields[atom]; ok {
			return Outcome{Status: StatusProceed, Field: *f}
		}

		valRes := CreateValue(atom)
		if !valRes.IsOk() {
			abort(o.interp.Host, valRes.Kind(), valRes.Message(), expr.Line)
		}
		return Outcome{Status: StatusProceed, Field: FieldFromValue(valRes.Unwrap(), "")}
	}

	op := expr.Head()
	args := expr.Tail()

	switch {
	case isBinaryOperator(op):
		if len(args) != 2 {
			abort(o.interp.Host, ErrSyntax, "invalid number of arguments to binary operator "+op, expr.Line)
		}
		left := o.evaluateExpression(env, args[0])
		if left.Status == StatusException {
			return left
		}
		right := o.evaluateExpression(env, args[1])
		if right.Status == StatusException {
			return right
		}
		return o.applyBinaryOp(op, left.Field.Value, right.Field.Value, expr.Line)

	case isUnaryOperator(op):
		if len(args) != 1 {
			abort(o.interp.Host, ErrSyntax, "invalid number of arguments to unary operator "+op, expr.Line)
		}
		operand := o.evaluateExpression(env, args[0])
		if operand.Status == StatusException {
			return operand
		}
		res := EvalUnaryOp(o.interp.Types, op, operand.Field.Value, expr.Line)
		if !res.IsOk() {
			abort(o.interp.Host, res.Kind(), res.Message(), res.Line())
		}
		return Outcome{Status: StatusProceed, Field: FieldFromValue(res.Unwrap(), "")}

	case op == exprNew:
		if len(args) != 1 {
			abort(o.interp.Host, ErrSyntax, "new expects only 1 argument", expr.Line)
		}
		obj := o.interp.InstantiateClass(args[0].Atom, expr.Line)
		return Outcome{Status: StatusProceed, Field: FieldFromValue(NewObjectValue(obj), "")}

	case op == stmtCall:
		return o.executeCallAux(env, expr)
	}

	abort(o.interp.Host, ErrSyntax, "expected an expression", expr.Line)
	panic("unreachable")
}

// applyBinaryOp implements the original's class-vs-class compatibility
// rule, grounded on
// original_source/brewin_object.py's __evaluate_expression binary-operator
// branch: two object operands may only be compared if one's dynamic type
// is a subtype of the other's (or vice versa). Only the operands' Values
// reach this function, so their declared types are not checked.
func (o *Object) applyBinaryOp(op string, left, right Value, line int) Outcome {
	leftIsObj := !isPrimitive(left.Type)
	rightIsObj := !isPrimitive(right.Type)

	if leftIsObj && rightIsObj {
		related := o.interp.Types.IsSubtype(left.Type, right.Type) || o.interp.Types.IsSubtype(right.Type, left.Type)
		if !related {
			abort(o.interp.Host, ErrType, "cannot perform "+op+" on unrelated object types "+left.Type+" and "+right.Type, line)
		}
		res := EvalBinaryOp(o.interp.Types, op, left, right, line)
		if !res.IsOk() {
			abort(o.interp.Host, res.Kind(), res.Message(), res.Line())
		}
		return Outcome{Status: StatusProceed, Field: FieldFromValue(res.Unwrap(), "")}
	}

	if left.Type != right.Type {
		abort(o.interp.Host, ErrType, op+" attempted on incompatible types "+left.Type+" and "+right.Type, line)
	}

	res := EvalBinaryOp(o.interp.Types, op, left, right, line)
	if !res.IsOk() {
		abort(o.interp.Host, res.Kind(), res.Message(), res.Line())
	}
	return Outcome{Status: StatusProceed, Field: FieldFromValue(res.Unwrap(), "")}
}

// literalOf renders a Value the way `print` does: booleans as true/false,
// null as the literal text "null", a live object reference as
// ClassName@instanceID, and everything else via its native string form.
// Resolves spec.md §9's print-of-object/null open question per
// SPEC_FULL.md §1.1.
func (o *Object) literalOf(v Value) string {
	switch v.Type {
	case TypeBool:
		if v.Payload.(bool) {
			return "true"
		}
		return "false"
	case TypeInt:
		return strconv.Itoa(v.Payload.(int))
	case TypeString:
		return v.Payload.(string)
	case TypeNothing:
		return ""
	}
	if v.IsNull() {
		return "null"
	}
	if obj := v.AsObject(); obj != nil {
		return obj.ClassName + "@" + strconv.Itoa(obj.InstanceID)
	}
	return "null"
}
