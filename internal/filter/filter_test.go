package filter

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/cfgedit/internal/value"
)

const sample = `{
	"name": "panel",
	"size": [800, 600],
	"widgets": [
		{"kind": "button", "enabled": true, "label": "<ok>"},
		{"kind": "slider", "enabled": false, "label": "volume"}
	]
}`

func mustParse(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.ParseString(s)
	require.NoError(t, err)
	return v
}

func TestQuery_JMESPath(t *testing.T) {
	doc := mustParse(t, sample)

	tests := []struct {
		expr string
		want string
	}{
		{"name", `"panel"`},
		{"size[1]", `600`},
		{"widgets[?enabled].kind", "[\n  \"button\"\n]"},
		{"widgets[0].label", `"<ok>"`},
		{"missing", "null"},
		{"length(widgets)", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Query(context.Background(), doc, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_DoesNotModify(t *testing.T) {
	doc := mustParse(t, sample)
	before := doc.Clone()

	_, err := Query(context.Background(), doc, "widgets[].label")
	require.NoError(t, err)
	assert.True(t, before.Equal(doc))
}

func TestQuery_Errors(t *testing.T) {
	doc := mustParse(t, sample)

	_, err := Query(context.Background(), doc, "")
	assert.Error(t, err)

	_, err = Query(context.Background(), doc, "widgets[?")
	assert.Error(t, err)

	_, err = Query(context.Background(), nil, "name")
	assert.Error(t, err)
}

func TestQuery_ShellCommand(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	doc := mustParse(t, `{"a": 1}`)

	got, err := Query(context.Background(), doc, "$(wc -l)")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	_, err = Query(context.Background(), doc, "$(exit 3)")
	assert.Error(t, err)
}

func TestQuery_LargeIntegersPrintedExactly(t *testing.T) {
	doc := mustParse(t, `{"id": 9007199254740993, "ids": [1, 12345678901234567]}`)

	got, err := Query(context.Background(), doc, "id")
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", got)

	got, err = Query(context.Background(), doc, "ids[1]")
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567", got)
}

func TestIsShellCommand(t *testing.T) {
	assert.True(t, IsShellCommand("$(jq .)"))
	assert.True(t, IsShellCommand("  $(cat)  "))
	assert.False(t, IsShellCommand("name"))
}
