package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassDef_DuplicateFieldIsNameError(t *testing.T) {
	node := classNode("Thing", fieldNode("int", "x"), fieldNode("string", "x"))
	r := newTestTypeRegistry()

	res := NewClassDef(node, r)
	require.True(t, res.IsOk())
	cd := res.Unwrap()

	extractRes := cd.Extract(r)
	require.False(t, extractRes.IsOk())
	assert.Equal(t, ErrName, extractRes.Kind())
}

func TestClassDef_ExactDuplicateSignatureIsNameError(t *testing.T) {
	node := classNode("Thing",
		methodNode("void", "greet", []Node{paramNode("int", "n")}, beginNode()),
		methodNode("void", "greet", []Node{paramNode("int", "m")}, beginNode()),
	)
	r := newTestTypeRegistry()

	res := NewClassDef(node, r)
	require.True(t, res.IsOk())
	cd := res.Unwrap()

	extractRes := cd.Extract(r)
	require.False(t, extractRes.IsOk())
	assert.Equal(t, ErrName, extractRes.Kind())
}

func TestClassDef_TrueOverloadingByParamTypeIsAllowed(t *testing.T) {
	node := classNode("Thing",
		methodNode("void", "greet", nil, beginNode()),
		methodNode("void", "greet", []Node{paramNode("int", "n")}, beginNode()),
		methodNode("void", "greet", []Node{paramNode("string", "s")}, beginNode()),
	)
	r := newTestTypeRegistry()

	res := NewClassDef(node, r)
	require.True(t, res.IsOk())
	cd := res.Unwrap()

	extractRes := cd.Extract(r)
	require.True(t, extractRes.IsOk())
	assert.Len(t, cd.MethodDefs, 3)
}

func TestClassDef_UnrecognizedMemberKeywordIsSyntaxError(t *testing.T) {
	node := classNode("Thing", l(a("bogus"), a("x")))
	r := newTestTypeRegistry()

	res := NewClassDef(node, r)
	require.True(t, res.IsOk())
	cd := res.Unwrap()

	extractRes := cd.Extract(r)
	require.False(t, extractRes.IsOk())
	assert.Equal(t, ErrSyntax, extractRes.Kind())
}

func TestClassDef_InheritsUnknownSuperIsTypeError(t *testing.T) {
	node := classInheritsNode("Dog", "Animal")
	r := newTestTypeRegistry()

	res := NewClassDef(node, r)
	require.False(t, res.IsOk())
	assert.Equal(t, ErrType, res.Kind())
}

func TestClassDef_DuplicateClassNameIsTypeError(t *testing.T) {
	r := newTestTypeRegistry()
	first := classNode("Thing")
	require.True(t, NewClassDef(first, r).IsOk())

	second := classNode("Thing")
	res := NewClassDef(second, r)
	require.False(t, res.IsOk())
	assert.Equal(t, ErrType, res.Kind())
}
