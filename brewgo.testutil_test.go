package brewgo

// Node-building helpers mirroring internal's own test scaffolding
// (internal/brewgo.testutil_test.go), duplicated at this package
// boundary since Node is only a type alias and internal's unexported
// helpers aren't visible here.

func a(text string) Node {
	return Node{Atom: text}
}

func l(elems ...Node) Node {
	return Node{Elements: elems}
}

func strLit(s string) Node {
	return a(`"` + s + `"`)
}

func classNode(name string, members ...Node) Node {
	return l(append([]Node{a("class"), a(name)}, members...)...)
}

func fieldNode(typ, name string) Node {
	return l(a("field"), a(typ), a(name))
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

func returnNode(value ...Node) Node {
	if len(value) == 0 {
		return l(a("return"))
	}
	return l(a("return"), value[0])
}

func callNode(obj, method string, args ...Node) Node {
	return l(append([]Node{a("call"), a(obj), a(method)}, args...)...)
}

func binOpNode(op string, left, right Node) Node {
	return l(a(op), left, right)
}

// mainProgram wraps a single statement as `main`'s whole body, mirroring
// internal's own test helper of the same name.
func mainProgram(body Node, extraClasses ...Node) []Node {
	program := []Node{classNode("main", methodNode("void", "main", nil, body))}
	return append(program, extraClasses...)
}
