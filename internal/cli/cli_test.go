package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/cfgedit/internal/errors"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormat_PrintsEditorLayout(t *testing.T) {
	path := writeDoc(t, `{"x":[1,2,3],"o":{"b":true}}`)

	var out bytes.Buffer
	require.NoError(t, Format(FormatOptions{FilePath: path, Indent: 2}, &out))

	assert.Equal(t, "{\n  \"x\": [1, 2, 3],\n  \"o\": {\n    \"b\": true\n  }\n}\n", out.String())
}

func TestFormat_LeavesFileUntouched(t *testing.T) {
	original := `{"x":[1,2,3]}`
	path := writeDoc(t, original)

	require.NoError(t, Format(FormatOptions{FilePath: path, Indent: 4}, &bytes.Buffer{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestFormat_Errors(t *testing.T) {
	err := Format(FormatOptions{FilePath: filepath.Join(t.TempDir(), "missing.json")}, &bytes.Buffer{})
	assert.True(t, errors.IsIO(err))

	err = Format(FormatOptions{FilePath: writeDoc(t, `{"a":`)}, &bytes.Buffer{})
	assert.True(t, errors.IsParse(err))
}

func TestQuery(t *testing.T) {
	path := writeDoc(t, `{"name": "panel", "size": [800, 600]}`)

	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{"string", "name", "\"panel\"\n"},
		{"array", "size", "[\n  800,\n  600\n]\n"},
		{"index", "size[0]", "800\n"},
		{"shell command", "$(wc -l)", "4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Query(QueryOptions{FilePath: path, Expression: tt.expression}, &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestQuery_Errors(t *testing.T) {
	path := writeDoc(t, `{"a": 1}`)

	assert.Error(t, Query(QueryOptions{FilePath: path, Expression: "a[?"}, &bytes.Buffer{}))
	assert.Error(t, Query(QueryOptions{FilePath: path, Expression: ""}, &bytes.Buffer{}))

	err := Query(QueryOptions{FilePath: filepath.Join(t.TempDir(), "missing.json"), Expression: "a"}, &bytes.Buffer{})
	assert.True(t, errors.IsIO(err))
}
