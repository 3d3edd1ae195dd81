package docvalue_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsafe-go/docsafe/pkg/docvalue"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected docvalue.Kind
	}{
		{name: "nil is null", input: nil, expected: docvalue.KindNull},
		{name: "bool", input: true, expected: docvalue.KindBool},
		{name: "int", input: 42, expected: docvalue.KindNumber},
		{name: "int64", input: int64(-7), expected: docvalue.KindNumber},
		{name: "uint", input: uint(7), expected: docvalue.KindNumber},
		{name: "finite float", input: 3.14, expected: docvalue.KindNumber},
		{name: "float32", input: float32(1.5), expected: docvalue.KindNumber},
		{name: "json number", input: json.Number("12.5"), expected: docvalue.KindNumber},
		{name: "string", input: "hello", expected: docvalue.KindString},
		{name: "byte slice is string-like", input: []byte{0x01}, expected: docvalue.KindString},
		{name: "any slice", input: []any{1, "two"}, expected: docvalue.KindArray},
		{name: "typed slice", input: []string{"a", "b"}, expected: docvalue.KindArray},
		{name: "generic map", input: map[string]any{"a": 1}, expected: docvalue.KindObject},
		{name: "typed map", input: map[string]int{"a": 1}, expected: docvalue.KindObject},
		{name: "NaN", input: math.NaN(), expected: docvalue.KindForbidden},
		{name: "positive infinity", input: math.Inf(1), expected: docvalue.KindForbidden},
		{name: "negative infinity", input: math.Inf(-1), expected: docvalue.KindForbidden},
		{name: "unparseable json number", input: json.Number("abc"), expected: docvalue.KindForbidden},
		{name: "undefined marker", input: docvalue.Undefined, expected: docvalue.KindForbidden},
		{name: "function", input: func() {}, expected: docvalue.KindForbidden},
		{name: "channel", input: make(chan int), expected: docvalue.KindForbidden},
		{name: "struct", input: struct{ A int }{1}, expected: docvalue.KindForbidden},
		{name: "complex", input: complex(1, 2), expected: docvalue.KindForbidden},
		{name: "int-keyed map", input: map[int]any{1: "a"}, expected: docvalue.KindForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, docvalue.Classify(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("dereferences pointers", func(t *testing.T) {
		t.Parallel()

		s := "value"
		v, kind := docvalue.Resolve(&s)
		assert.Equal(t, docvalue.KindString, kind)
		assert.Equal(t, "value", v)
	})

	t.Run("nil pointer resolves to null", func(t *testing.T) {
		t.Parallel()

		var p *string
		v, kind := docvalue.Resolve(p)
		assert.Equal(t, docvalue.KindNull, kind)
		assert.Nil(t, v)
	})

	t.Run("normalizes typed slices", func(t *testing.T) {
		t.Parallel()

		v, kind := docvalue.Resolve([]int{1, 2, 3})
		require.Equal(t, docvalue.KindArray, kind)
		assert.Equal(t, []any{1, 2, 3}, v)
	})

	t.Run("normalizes typed maps", func(t *testing.T) {
		t.Parallel()

		v, kind := docvalue.Resolve(map[string]string{"a": "b"})
		require.Equal(t, docvalue.KindObject, kind)
		assert.Equal(t, map[string]any{"a": "b"}, v)
	})
}

func TestKind(t *testing.T) {
	t.Parallel()

	t.Run("persistable covers everything but forbidden", func(t *testing.T) {
		t.Parallel()

		for _, k := range []docvalue.Kind{
			docvalue.KindNull, docvalue.KindBool, docvalue.KindNumber,
			docvalue.KindString, docvalue.KindArray, docvalue.KindObject,
		} {
			assert.True(t, k.Persistable(), k.String())
		}
		assert.False(t, docvalue.KindForbidden.Persistable())
	})

	t.Run("scalar kinds", func(t *testing.T) {
		t.Parallel()

		assert.True(t, docvalue.KindString.Scalar())
		assert.True(t, docvalue.KindNull.Scalar())
		assert.False(t, docvalue.KindArray.Scalar())
		assert.False(t, docvalue.KindObject.Scalar())
	})
}

func TestDescribeForbidden(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "undefined value not allowed", docvalue.DescribeForbidden(docvalue.Undefined))
	assert.Equal(t, "non-finite number not allowed", docvalue.DescribeForbidden(math.NaN()))
	assert.Equal(t, "function value not allowed", docvalue.DescribeForbidden(func() {}))
	assert.Equal(t, "channel value not allowed", docvalue.DescribeForbidden(make(chan int)))
	assert.Equal(t, "unsupported value type not allowed", docvalue.DescribeForbidden(struct{}{}))
}

func TestIsUndefined(t *testing.T) {
	t.Parallel()

	assert.True(t, docvalue.IsUndefined(docvalue.Undefined))
	assert.False(t, docvalue.IsUndefined(nil))
	assert.False(t, docvalue.IsUndefined("undefined"))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	t.Run("non-empty containers carry identity", func(t *testing.T) {
		t.Parallel()

		m := map[string]any{"a": 1}
		id1, ok := docvalue.Identity(m)
		require.True(t, ok)
		id2, ok := docvalue.Identity(m)
		require.True(t, ok)
		assert.Equal(t, id1, id2)
	})

	t.Run("empty containers have none", func(t *testing.T) {
		t.Parallel()

		_, ok := docvalue.Identity([]any{})
		assert.False(t, ok)
		_, ok = docvalue.Identity(map[string]any{})
		assert.False(t, ok)
	})

	t.Run("scalars have none", func(t *testing.T) {
		t.Parallel()

		_, ok := docvalue.Identity("x")
		assert.False(t, ok)
	})
}
