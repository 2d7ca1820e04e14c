package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/cfgedit/internal/value"
)

type call struct {
	id    int
	kind  string
	label string
}

// fakeWidgets records every control and answers with scripted outcomes
// keyed by the identity on top of the ID stack.
type fakeWidgets struct {
	stack     []int
	calls     []call
	skipped   int
	collapsed map[int]bool
	opened    int

	bools   map[int]bool
	ints    map[int]int64
	floats  map[int]float64
	texts   map[int]string
	colors  map[int][4]float64
	presses map[string]bool
}

func newFake() *fakeWidgets {
	return &fakeWidgets{
		collapsed: map[int]bool{},
		bools:     map[int]bool{},
		ints:      map[int]int64{},
		floats:    map[int]float64{},
		texts:     map[int]string{},
		colors:    map[int][4]float64{},
		presses:   map[string]bool{},
	}
}

func (f *fakeWidgets) top() int {
	if len(f.stack) == 0 {
		return 0
	}
	return f.stack[len(f.stack)-1]
}

func (f *fakeWidgets) record(kind, label string) int {
	id := f.top()
	f.calls = append(f.calls, call{id: id, kind: kind, label: label})
	return id
}

func (f *fakeWidgets) Label(label, text string) { f.record("label", label) }

func (f *fakeWidgets) Toggle(label string, v bool) (bool, bool) {
	nv, ok := f.bools[f.record("toggle", label)]
	if !ok {
		return v, false
	}
	return nv, true
}

func (f *fakeWidgets) InputInt(label string, v int64) (int64, bool) {
	nv, ok := f.ints[f.record("int", label)]
	if !ok {
		return v, false
	}
	return nv, true
}

func (f *fakeWidgets) InputFloat(label string, v float64) (float64, bool) {
	nv, ok := f.floats[f.record("float", label)]
	if !ok {
		return v, false
	}
	return nv, true
}

func (f *fakeWidgets) InputText(label string, v string) (string, bool) {
	nv, ok := f.texts[f.record("text", label)]
	if !ok {
		return v, false
	}
	return nv, true
}

func (f *fakeWidgets) ColorEdit(label string, rgba [4]float64, channels int) ([4]float64, bool) {
	nv, ok := f.colors[f.record("color", label)]
	if !ok {
		return rgba, false
	}
	return nv, true
}

func (f *fakeWidgets) TreeNode(label string, flags TreeFlags) bool {
	id := f.record("tree", label)
	if f.collapsed[id] && !flags.Has(TreeAlwaysOpen) {
		return false
	}
	f.opened++
	return true
}

func (f *fakeWidgets) TreePop() { f.opened-- }

func (f *fakeWidgets) Skip(n int) { f.skipped += n }

func (f *fakeWidgets) PushID(id int) { f.stack = append(f.stack, id) }

func (f *fakeWidgets) PopID() { f.stack = f.stack[:len(f.stack)-1] }

func (f *fakeWidgets) Button(label string) bool {
	f.record("button", label)
	return f.presses[label]
}

func (f *fakeWidgets) idsByLabel() map[string]int {
	out := map[string]int{}
	for _, c := range f.calls {
		out[c.label] = c.id
	}
	return out
}

func mustParse(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.ParseString(s)
	require.NoError(t, err)
	return v
}

func render(w *fakeWidgets, v *value.Value) (bool, int) {
	ids := 0
	changed := Project(w, "Document", v, 0, &ids)
	return changed, ids
}

func TestProject_PreOrderIdentity(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": {"c": 2}}`)

	first := newFake()
	_, total := render(first, doc)
	second := newFake()
	render(second, doc)

	assert.Equal(t, 4, total)
	assert.Equal(t, map[string]int{"Document": 1, "a": 2, "b": 3, "c": 4}, first.idsByLabel())
	assert.Equal(t, first.calls, second.calls, "identities must be stable across passes")
	assert.Empty(t, first.stack, "PushID/PopID must balance")
	assert.Zero(t, first.opened, "TreeNode/TreePop must balance")
}

func TestProject_UniqueIdentities(t *testing.T) {
	doc := mustParse(t, `{"x": [1, {"x": 2}, [3]], "y": {"x": null}, "z": [true]}`)
	w := newFake()
	render(w, doc)

	seen := map[int]bool{}
	for _, c := range w.calls {
		assert.False(t, seen[c.id], "identity %d used twice", c.id)
		seen[c.id] = true
	}
	assert.Len(t, seen, doc.Count()+1)
}

func TestProject_Dispatch(t *testing.T) {
	doc := mustParse(t, `{"n": null, "b": false, "i": 3, "f": 0.5, "s": "hi", "bgColor": [1, 2, 3], "list": [1], "obj": {}}`)
	w := newFake()
	render(w, doc)

	kinds := map[string]string{}
	for _, c := range w.calls {
		kinds[c.label] = c.kind
	}
	assert.Equal(t, map[string]string{
		"Document": "tree",
		"n":        "label",
		"b":        "toggle",
		"i":        "int",
		"f":        "float",
		"s":        "text",
		"bgColor":  "color",
		"list":     "tree",
		"list[0]":  "int",
		"obj":      "tree",
	}, kinds)
}

func TestProject_GenericArrayEdit(t *testing.T) {
	doc := mustParse(t, `{"x": [1, 2, 3]}`)

	w := newFake()
	render(w, doc)
	var labels []string
	for _, c := range w.calls {
		if c.kind == "int" {
			labels = append(labels, c.label)
		}
	}
	require.Equal(t, []string{"x[0]", "x[1]", "x[2]"}, labels)

	ids := w.idsByLabel()
	edit := newFake()
	edit.ints[ids["x[1]"]] = 5
	changed, _ := render(edit, doc)
	assert.True(t, changed)

	s, err := value.Compact(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"x": [1, 5, 3]}`, s)
}

func TestProject_ColorEdit(t *testing.T) {
	doc := mustParse(t, `{"fillColor": [0, 128, 255], "after": 1}`)

	w := newFake()
	render(w, doc)
	ids := w.idsByLabel()
	assert.Equal(t, 2, ids["fillColor"])
	assert.Equal(t, 6, ids["after"], "color channels still consume identities")
	assert.Equal(t, 3, w.skipped)

	edit := newFake()
	edit.colors[ids["fillColor"]] = [4]float64{0, 1, 0, 1}
	changed, _ := render(edit, doc)
	assert.True(t, changed)

	s, err := value.Compact(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"fillColor": [0, 255, 0], "after": 1}`, s)
}

func TestProject_ColorUnitRGBA(t *testing.T) {
	doc := mustParse(t, `{"tintColour": [0.5, 0.5, 0.5, 1.0]}`)
	w := newFake()
	w.colors[2] = [4]float64{0.25, 0.5, 0.75, 0.0}
	render(w, doc)

	s, err := value.Compact(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"tintColour": [0.25, 0.5, 0.75, 0.0]}`, s)
}

func TestProject_CollapsedGroupKeepsNumbering(t *testing.T) {
	doc := mustParse(t, `{"a": {"b": 1, "c": [2, 3]}, "d": 4}`)

	open := newFake()
	render(open, doc)
	want := open.idsByLabel()["d"]

	closed := newFake()
	closed.collapsed[open.idsByLabel()["a"]] = true
	render(closed, doc)

	got := closed.idsByLabel()
	assert.Equal(t, want, got["d"])
	assert.NotContains(t, got, "b")
	assert.Equal(t, 4, closed.skipped)
}

func TestProject_RootAlwaysOpen(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	w := newFake()
	w.collapsed[1] = true
	render(w, doc)

	assert.Contains(t, w.idsByLabel(), "a")
}

func TestProject_ScalarEdits(t *testing.T) {
	doc := mustParse(t, `{"b": false, "f": 1.5, "s": "old", "i": 7}`)
	w := newFake()
	w.bools[2] = true
	w.floats[3] = 2.0
	w.texts[4] = "new"
	render(w, doc)

	assert.True(t, doc.Get("b").Bool())
	assert.Equal(t, value.KindFloat, doc.Get("f").Kind(), "real fields stay real")
	assert.Equal(t, 2.0, doc.Get("f").Float())
	assert.Equal(t, "new", doc.Get("s").Str())
	assert.Equal(t, int64(7), doc.Get("i").Int())
}

func TestProject_NoEditNoChange(t *testing.T) {
	doc := mustParse(t, `{"a": [1, {"b": null}], "cColor": [1.0, 0.0, 0.0]}`)
	before := doc.Clone()

	changed, _ := render(newFake(), doc)
	assert.False(t, changed)
	assert.True(t, before.Equal(doc))
}

func TestProject_ScalarRoot(t *testing.T) {
	doc := mustParse(t, `42`)
	w := newFake()
	_, total := render(w, doc)

	assert.Equal(t, 1, total)
	require.Len(t, w.calls, 1)
	assert.Equal(t, call{id: 1, kind: "int", label: "Document"}, w.calls[0])
}
