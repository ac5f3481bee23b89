package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_GetMethod_OwnClassFirstThenSuper(t *testing.T) {
	animal := classNode("Animal",
		methodNode("string", "speak", nil, returnNode(strLit("..."))),
	)
	dog := classInheritsNode("Dog", "Animal",
		methodNode("string", "bark", nil, returnNode(strLit("woof"))),
	)
	main := classNode("main", methodNode("void", "main", nil, beginNode()))

	host := newTestHost()
	interp := newTestInterpreter(host, nil)
	interp.Load([]Node{main, animal, dog})
	require.Nil(t, host.err)

	pup := interp.InstantiateClass("Dog", 0)

	t.Run("finds its own method", func(t *testing.T) {
		definingObj, m := pup.GetMethod("bark", nil, 0)
		assert.Same(t, pup, definingObj)
		assert.Equal(t, "bark", m.Def.Name)
	})

	t.Run("falls through to an inherited method", func(t *testing.T) {
		definingObj, m := pup.GetMethod("speak", nil, 0)
		assert.Same(t, pup.Super, definingObj)
		assert.Equal(t, "speak", m.Def.Name)
	})

	t.Run("unknown method aborts as a NAME error", func(t *testing.T) {
		h := newTestHost()
		i2 := newTestInterpreter(h, nil)
		i2.Load([]Node{main, animal, dog})
		pup2 := i2.InstantiateClass("Dog", 0)

		sig := runProtected(func() {
			pup2.GetMethod("fly", nil, 7)
		})
		require.NotNil(t, sig)
		assert.Equal(t, ErrName, sig.kind)
	})
}

func TestObject_GetMethod_OverloadResolutionBySignature(t *testing.T) {
	main := classNode("main",
		methodNode("void", "greet", nil, printNode(strLit("none"))),
		methodNode("void", "greet", []Node{paramNode("int", "n")}, printNode(strLit("int"))),
		methodNode("void", "greet", []Node{paramNode("string", "s")}, printNode(strLit("string"))),
		methodNode("void", "main", nil, beginNode()),
	)

	host := newTestHost()
	interp := newTestInterpreter(host, nil)
	interp.Load([]Node{main})
	require.Nil(t, host.err)
	m := interp.InstantiateClass("main", 0)

	cases := []struct {
		name     string
		argTypes []string
		want     string
	}{
		{"no args picks the zero-arity overload", nil, "none"},
		{"an int arg picks the int overload", []string{TypeInt}, "int"},
		{"a string arg picks the string overload", []string{TypeString}, "string"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, method := m.GetMethod("greet", tc.argTypes, 0)
			require.NotNil(t, method)
			assert.Equal(t, len(tc.argTypes), len(method.ParamFields))
			assert.Equal(t, `"`+tc.want+`"`, method.Def.Body.At(1).Atom)
		})
	}
}

func TestObject_GetMethod_SubtypeArgumentMatches(t *testing.T) {
	animal := classNode("Animal", methodNode("void", "noop", nil, beginNode()))
	dog := classInheritsNode("Dog", "Animal", methodNode("void", "noop2", nil, beginNode()))
	main := classNode("main",
		methodNode("void", "accept", []Node{paramNode("Animal", "a")}, printNode(strLit("accepted"))),
		methodNode("void", "main", nil, beginNode()),
	)

	host := newTestHost()
	interp := newTestInterpreter(host, nil)
	interp.Load([]Node{main, animal, dog})
	require.Nil(t, host.err)

	m := interp.InstantiateClass("main", 0)
	_, method := m.GetMethod("accept", []string{"Dog"}, 0)
	require.NotNil(t, method)
	assert.Equal(t, "accept", method.Def.Name)
}

func TestObject_ExecuteMethod_BindsMeToOriginalReceiverOnExternalCall(t *testing.T) {
	main := classNode("main",
		methodNode("string", "whoAmI", nil, returnNode(callNode("me", "name"))),
		methodNode("string", "name", nil, returnNode(strLit("main"))),
		methodNode("void", "main", nil, printNode(callNode("me", "whoAmI"))),
	)

	host := newTestHost()
	newTestInterpreter(host, nil).Run([]Node{main})

	require.Nil(t, host.err)
	require.Len(t, host.output, 1)
	assert.Equal(t, "main", host.output[0])
}
