package serialize_test

import (
	"testing"

	"github.com/jacklang/jack/internal/eval"
	"github.com/jacklang/jack/internal/serialize"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{120, "120.0"},
		{20, "20.0"},
		{0, "0.0"},
		{-5, "-5.0"},
		{3.5, "3.5"},
		{0.1, "0.1"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, serialize.FormatNumber(c.in))
	}
}

func TestToJSONScalars(t *testing.T) {
	out, err := serialize.ToJSON(nil)
	require.NoError(t, err)
	require.Equal(t, "null", out)

	out, err = serialize.ToJSON(true)
	require.NoError(t, err)
	require.Equal(t, "true", out)

	out, err = serialize.ToJSON(42.0)
	require.NoError(t, err)
	require.Equal(t, "42.0", out)

	out, err = serialize.ToJSON("hi\n\"there\"")
	require.NoError(t, err)
	require.Equal(t, `"hi\n\"there\""`, out)
}

func TestToJSONArray(t *testing.T) {
	out, err := serialize.ToJSON([]interface{}{1.0, "a", nil, false})
	require.NoError(t, err)
	require.Equal(t, `[1.0,"a",null,false]`, out)
}

// TestToJSONObjectPreservesInsertionOrder guards against regressing to a
// plain Go map, whose iteration order is randomized: fields must appear in
// declaration order regardless of lexical sort order.
func TestToJSONObjectPreservesInsertionOrder(t *testing.T) {
	m := eval.NewOrderedMap()
	m.Set("zebra", 1.0)
	m.Set("apple", 2.0)
	m.Set("mango", 3.0)

	out, err := serialize.ToJSON(m)
	require.NoError(t, err)
	require.Equal(t, `{"zebra":1.0,"apple":2.0,"mango":3.0}`, out)
}

func TestToJSONNestedObjectsAndArrays(t *testing.T) {
	inner := eval.NewOrderedMap()
	inner.Set("x", 1.0)
	inner.Set("y", 2.0)

	out, err := serialize.ToJSON([]interface{}{inner, []interface{}{true, nil}})
	require.NoError(t, err)
	require.Equal(t, `[{"x":1.0,"y":2.0},[true,null]]`, out)
}

func TestToJSONRejectsUnknownType(t *testing.T) {
	_, err := serialize.ToJSON(struct{}{})
	require.Error(t, err)
}
