package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTypeRegistry() *TypeRegistry {
	return NewTypeRegistry("", nil)
}

func TestTypeRegistry_RegisterClass(t *testing.T) {
	r := newTestTypeRegistry()

	require.True(t, r.RegisterClass("Animal", TypeClass).IsOk())
	require.True(t, r.RegisterClass("Dog", "Animal").IsOk())
	assert.True(t, r.DefinesClass("Dog"))

	t.Run("duplicate name is rejected", func(t *testing.T) {
		res := r.RegisterClass("Dog", "Animal")
		require.False(t, res.IsOk())
		assert.Equal(t, ErrType, res.Kind())
	})

	t.Run("unknown super is rejected", func(t *testing.T) {
		res := r.RegisterClass("Cat", "Feline")
		require.False(t, res.IsOk())
		assert.Equal(t, ErrType, res.Kind())
	})
}

func TestTypeRegistry_RegisterTemplate(t *testing.T) {
	r := newTestTypeRegistry()

	require.True(t, r.RegisterTemplate("Box", 1).IsOk())
	assert.True(t, r.DefinesTemplate("Box"))
	arity, ok := r.TemplateArity("Box")
	require.True(t, ok)
	assert.Equal(t, 1, arity)

	res := r.RegisterTemplate("Box", 2)
	require.False(t, res.IsOk())
	assert.Equal(t, ErrType, res.Kind())
}

func TestTypeRegistry_StrToType(t *testing.T) {
	r := newTestTypeRegistry()
	require.True(t, r.RegisterClass("Animal", TypeClass).IsOk())
	require.True(t, r.RegisterTemplate("Box", 1).IsOk())

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"int token", "int", TypeInt, false},
		{"string token", "string", TypeString, false},
		{"bool token", "bool", TypeBool, false},
		{"null token", "null", TypeNull, false},
		{"void maps to nothing", "void", TypeNothing, false},
		{"registered class", "Animal", "Animal", false},
		{"valid template instantiation", "Box@int", "Box@int", false},
		{"unknown type", "Fish", "", true},
		{"unregistered template base", "Crate@int", "", true},
		{"wrong arity", "Box@int@string", "", true},
		{"invalid type argument", "Box@Fish", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := r.StrToType(tc.input)
			if tc.wantErr {
				require.False(t, res.IsOk())
				assert.Equal(t, ErrType, res.Kind())
				return
			}
			require.True(t, res.IsOk())
			assert.Equal(t, tc.want, res.Unwrap())
		})
	}
}

func TestTypeRegistry_IsSubtype(t *testing.T) {
	r := newTestTypeRegistry()
	require.True(t, r.RegisterClass("Animal", TypeClass).IsOk())
	require.True(t, r.RegisterClass("Dog", "Animal").IsOk())
	require.True(t, r.RegisterClass("Puppy", "Dog").IsOk())
	require.True(t, r.RegisterClass("Cat", "Animal").IsOk())

	t.Run("reflexive", func(t *testing.T) {
		assert.True(t, r.IsSubtype("Dog", "Dog"))
	})
	t.Run("direct super", func(t *testing.T) {
		assert.True(t, r.IsSubtype("Dog", "Animal"))
	})
	t.Run("transitive", func(t *testing.T) {
		assert.True(t, r.IsSubtype("Puppy", "Animal"))
	})
	t.Run("unrelated siblings are not subtypes", func(t *testing.T) {
		assert.False(t, r.IsSubtype("Cat", "Dog"))
	})
	t.Run("supertype is not a subtype of its subtype", func(t *testing.T) {
		assert.False(t, r.IsSubtype("Animal", "Dog"))
	})
	t.Run("null is a subtype of every class", func(t *testing.T) {
		assert.True(t, r.IsSubtype(TypeNull, "Dog"))
		assert.True(t, r.IsSubtype(TypeNull, TypeClass))
	})
	t.Run("null is not a subtype of a primitive", func(t *testing.T) {
		assert.False(t, r.IsSubtype(TypeNull, TypeInt))
	})

	require.True(t, r.RegisterTemplate("Box", 1).IsOk())
	t.Run("null is a subtype of a template instantiation", func(t *testing.T) {
		assert.True(t, r.IsSubtype(TypeNull, "Box@int"))
	})
}

func TestTypeRegistry_MangleAndSplitTemplateName(t *testing.T) {
	r := newTestTypeRegistry()

	mangled := r.MangleTemplateName("Pair", []string{"int", "string"})
	assert.Equal(t, "Pair@int@string", mangled)

	base, args := r.SplitTemplateName(mangled)
	assert.Equal(t, "Pair", base)
	assert.Equal(t, []string{"int", "string"}, args)
}

func TestTypeRegistry_Clear(t *testing.T) {
	r := newTestTypeRegistry()
	require.True(t, r.RegisterClass("Animal", TypeClass).IsOk())
	require.True(t, r.RegisterTemplate("Box", 1).IsOk())

	r.Clear()

	assert.False(t, r.DefinesClass("Animal"))
	assert.False(t, r.DefinesTemplate("Box"))
	assert.True(t, r.DefinesClass(TypeClass))
}
