package internal

import "go.uber.org/zap"

// testHost is the white-box test double for HostEnvironment, local to this
// package's tests the way the teacher's mockTemplateSourceResolver/
// mockTemplateExecutor live next to the tests that need them
// (prompty.executor.inheritance_test.go) rather than in a shared
// production file.
type testHost struct {
	output []string
	inputs []string
	cursor int
	err    *testHostError
}

type testHostError struct {
	kind    ErrorKind
	message string
	line    int
}

func newTestHost(inputs ...string) *testHost {
	return &testHost{inputs: inputs}
}

func (h *testHost) Output(line string) {
	h.output = append(h.output, line)
}

func (h *testHost) GetInput() string {
	if h.cursor >= len(h.inputs) {
		return ""
	}
	v := h.inputs[h.cursor]
	h.cursor++
	return v
}

func (h *testHost) Error(kind ErrorKind, message string, line int) {
	if h.err == nil {
		h.err = &testHostError{kind: kind, message: message, line: line}
	}
}

// --- Node-building helpers for hand-written Brewin source trees ---

func a(text string) Node {
	return NewAtom(text, 0)
}

func l(elems ...Node) Node {
	return NewList(elems...)
}

func strLit(s string) Node {
	return a(`"` + s + `"`)
}

func classNode(name string, members ...Node) Node {
	return l(append([]Node{a("class"), a(name)}, members...)...)
}

func classInheritsNode(name, super string, members ...Node) Node {
	return l(append([]Node{a("class"), a(name), a("inherits"), a(super)}, members...)...)
}

func tclassNode(name string, params []string, members ...Node) Node {
	paramNodes := make([]Node, len(params))
	for i, p := range params {
		paramNodes[i] = a(p)
	}
	head := []Node{a("tclass"), a(name), l(paramNodes...)}
	return l(append(head, members...)...)
}

func fieldNode(typ, name string, valueAtom ...string) Node {
	elems := []Node{a("field"), a(typ), a(name)}
	if len(valueAtom) > 0 {
		elems = append(elems, a(valueAtom[0]))
	}
	return l(elems...)
}

func paramNode(typ, name string) Node {
	return l(a(typ), a(name))
}

func methodNode(returnType, name string, params []Node, body Node) Node {
	return l(a("method"), a(returnType), a(name), l(params...), body)
}

func beginNode(stmts ...Node) Node {
	return l(append([]Node{a("begin")}, stmts...)...)
}

func printNode(args ...Node) Node {
	return l(append([]Node{a("print")}, args...)...)
}

func setNode(name string, value Node) Node {
	return l(a("set"), a(name), value)
}

func returnNode(value ...Node) Node {
	if len(value) == 0 {
		return l(a("return"))
	}
	return l(a("return"), value[0])
}

func callNode(obj, method string, args ...Node) Node {
	return l(append([]Node{a("call"), a(obj), a(method)}, args...)...)
}

func callExprNode(obj Node, method string, args ...Node) Node {
	return l(append([]Node{a("call"), obj, a(method)}, args...)...)
}

func newExprNode(typ string) Node {
	return l(a("new"), a(typ))
}

func ifNode(cond, thenStmt Node, elseStmt ...Node) Node {
	if len(elseStmt) == 0 {
		return l(a("if"), cond, thenStmt)
	}
	return l(a("if"), cond, thenStmt, elseStmt[0])
}

func throwNode(msg Node) Node {
	return l(a("throw"), msg)
}

func tryNode(tryStmt, catchStmt Node) Node {
	return l(a("try"), tryStmt, catchStmt)
}

func binOpNode(op string, left, right Node) Node {
	return l(a(op), left, right)
}

// mainProgram wraps a single statement as `main`'s whole body, the common
// case for an integration test that only cares about one print/throw/call.
func mainProgram(body Node, extraClasses ...Node) []Node {
	program := []Node{classNode("main", methodNode("void", "main", nil, body))}
	return append(program, extraClasses...)
}

func newTestInterpreter(host HostEnvironment, storage SpecializationStorage) *Interpreter {
	return NewInterpreter(host, zap.NewNop(), "", storage)
}
