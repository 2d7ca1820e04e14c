package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Layout(t *testing.T) {
	v, err := ParseString(`{"name":"panel","size":[800,600],"nested":{"palette":[[1,2],[3,4]],"items":[{"a":1,"b":[true,null]}],"empty":{},"none":[]},"scale":1.0}`)
	require.NoError(t, err)

	out, err := Serialize(v, 4)
	require.NoError(t, err)

	want := `{
    "name": "panel",
    "size": [800, 600],
    "nested": {
        "palette": [[1, 2], [3, 4]],
        "items": [{"a": 1, "b": [true, null]}],
        "empty": {},
        "none": []
    },
    "scale": 1.0
}
`
	assert.Equal(t, want, string(out))
}

func TestSerialize_Indent(t *testing.T) {
	v := NewObject(Member{Key: "a", Value: NewObject(Member{Key: "b", Value: NewInt(1)})})

	out, err := Serialize(v, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": 1\n  }\n}\n", string(out))

	out, err = Serialize(v, -1)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": {\n        \"b\": 1\n    }\n}\n", string(out))
}

func TestSerialize_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"null", NewNull(), "null\n"},
		{"bool", NewBool(false), "false\n"},
		{"int", NewInt(-3), "-3\n"},
		{"integral float", NewFloat(2), "2.0\n"},
		{"fraction", NewFloat(0.1), "0.1\n"},
		{"large float", NewFloat(1e21), "1e+21\n"},
		{"tiny float", NewFloat(1e-7), "1e-07\n"},
		{"string escapes", NewString("a\"b\\c\n<tag>&"), "\"a\\\"b\\\\c\\n<tag>&\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Serialize(tt.v, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestSerialize_NonFinite(t *testing.T) {
	_, err := Serialize(NewArray(NewFloat(math.Inf(1))), 4)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`[]`,
		`{"a": 1, "b": {"c": 2}}`,
		`{"x": [1, 2, 3], "y": [1.0, 2.5, -0.0], "z": "text"}`,
		`{"deep": {"er": {"est": [[{"k": [1, {"m": null}]}]]}}}`,
		`[{"backgroundColor": [255, 0, 0]}, {"tintColour": [0.5, 0.5, 0.5, 1.0]}]`,
		`{"u": "é😀", "big": 123456789012345, "small": 1e-9, "huge": 5e300}`,
		`"just a string"`,
		`3.0`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			v, err := ParseString(doc)
			require.NoError(t, err)

			first, err := Serialize(v, 4)
			require.NoError(t, err)

			reparsed, err := Parse(first)
			require.NoError(t, err)
			assert.True(t, v.Equal(reparsed), "structure changed across serialize/parse")

			second, err := Serialize(reparsed, 4)
			require.NoError(t, err)
			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestCompact(t *testing.T) {
	v, err := ParseString(`{"a": [1, 2], "b": {"c": 0.5}}`)
	require.NoError(t, err)

	s, err := Compact(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a": [1, 2], "b": {"c": 0.5}}`, s)
}
