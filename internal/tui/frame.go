package tui

import (
	"strconv"
	"strings"

	"github.com/studiowebux/cfgedit/internal/projection"
)

// rowKind identifies the widget a row was recorded from
type rowKind int

const (
	rowLabel rowKind = iota
	rowToggle
	rowInt
	rowFloat
	rowText
	rowColor
	rowGroup
	rowButton
)

func (k rowKind) String() string {
	switch k {
	case rowLabel:
		return "label"
	case rowToggle:
		return "toggle"
	case rowInt:
		return "int"
	case rowFloat:
		return "float"
	case rowText:
		return "text"
	case rowColor:
		return "color"
	case rowGroup:
		return "group"
	case rowButton:
		return "button"
	default:
		return "unknown"
	}
}

// editable reports whether the row opens the inline text editor
func (k rowKind) editable() bool {
	return k == rowInt || k == rowFloat || k == rowText
}

// row is one recorded control. Rows hold copies of the displayed values,
// never handles into the document.
type row struct {
	id    int // control identity, 0 for session-level rows
	kind  rowKind
	depth int
	label string
	text  string // label rows only
	path  string

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	rgba     [4]float64
	channels int

	open       bool // groups
	alwaysOpen bool
	hidden     int // descendants skipped under a closed group
}

// key identifies the row across frames
func (r row) key() string {
	if r.id == 0 {
		return r.kind.String() + ":" + r.label
	}
	return r.kind.String() + ":" + strconv.Itoa(r.id)
}

// frame records one render pass and hands pending outcomes to the control
// whose identity matches. A frame is used once.
type frame struct {
	rows []row

	ids   []int
	depth int
	paths []string

	folds   map[int]bool
	pending map[int]interface{}
	pressed map[string]bool
}

func newFrame(folds map[int]bool, pending map[int]interface{}, pressed map[string]bool) *frame {
	if pending == nil {
		pending = map[int]interface{}{}
	}
	if pressed == nil {
		pressed = map[string]bool{}
	}
	return &frame{
		folds:   folds,
		pending: pending,
		pressed: pressed,
	}
}

var _ projection.Widgets = (*frame)(nil)

func (f *frame) top() int {
	if len(f.ids) == 0 {
		return 0
	}
	return f.ids[len(f.ids)-1]
}

func (f *frame) path(label string) string {
	if len(f.paths) == 0 {
		return label
	}
	return strings.Join(f.paths, "/") + "/" + label
}

func (f *frame) record(r row) {
	r.id = f.top()
	r.depth = f.depth
	r.path = f.path(r.label)
	f.rows = append(f.rows, r)
}

// take removes and returns the pending outcome for the current identity
func (f *frame) take() (interface{}, bool) {
	id := f.top()
	if id == 0 {
		return nil, false
	}
	v, ok := f.pending[id]
	if ok {
		delete(f.pending, id)
	}
	return v, ok
}

func (f *frame) Label(label, text string) {
	f.record(row{kind: rowLabel, label: label, text: text})
}

func (f *frame) Toggle(label string, v bool) (bool, bool) {
	nv, changed := v, false
	if p, ok := f.take(); ok {
		if b, ok := p.(bool); ok && b != v {
			nv, changed = b, true
		}
	}
	f.record(row{kind: rowToggle, label: label, boolVal: nv})
	return nv, changed
}

func (f *frame) InputInt(label string, v int64) (int64, bool) {
	nv, changed := v, false
	if p, ok := f.take(); ok {
		if i, ok := p.(int64); ok && i != v {
			nv, changed = i, true
		}
	}
	f.record(row{kind: rowInt, label: label, intVal: nv})
	return nv, changed
}

func (f *frame) InputFloat(label string, v float64) (float64, bool) {
	nv, changed := v, false
	if p, ok := f.take(); ok {
		if x, ok := p.(float64); ok && x != v {
			nv, changed = x, true
		}
	}
	f.record(row{kind: rowFloat, label: label, floatVal: nv})
	return nv, changed
}

func (f *frame) InputText(label string, v string) (string, bool) {
	nv, changed := v, false
	if p, ok := f.take(); ok {
		if s, ok := p.(string); ok && s != v {
			nv, changed = s, true
		}
	}
	f.record(row{kind: rowText, label: label, strVal: nv})
	return nv, changed
}

// ColorEdit records the row with the color being returned, so the frame
// that applies an edit already shows it.
func (f *frame) ColorEdit(label string, rgba [4]float64, channels int) ([4]float64, bool) {
	nv, changed := rgba, false
	if p, ok := f.take(); ok {
		if c, ok := p.([4]float64); ok && c != rgba {
			nv, changed = c, true
		}
	}
	f.record(row{kind: rowColor, label: label, rgba: nv, channels: channels})
	return nv, changed
}

func (f *frame) TreeNode(label string, flags projection.TreeFlags) bool {
	id := f.top()
	open, set := f.folds[id]
	if !set {
		open = flags.Has(projection.TreeDefaultOpen)
	}
	if flags.Has(projection.TreeAlwaysOpen) {
		open = true
	}

	f.record(row{kind: rowGroup, label: label, open: open, alwaysOpen: flags.Has(projection.TreeAlwaysOpen)})
	if open {
		f.depth++
		f.paths = append(f.paths, label)
	}
	return open
}

func (f *frame) TreePop() {
	if f.depth > 0 {
		f.depth--
	}
	if len(f.paths) > 0 {
		f.paths = f.paths[:len(f.paths)-1]
	}
}

// Skip annotates a closed group with the number of descendants it hides
func (f *frame) Skip(n int) {
	if len(f.rows) == 0 {
		return
	}
	last := &f.rows[len(f.rows)-1]
	if last.kind == rowGroup && !last.open && last.id == f.top() {
		last.hidden = n
	}
}

func (f *frame) PushID(id int) {
	f.ids = append(f.ids, id)
}

func (f *frame) PopID() {
	if len(f.ids) > 0 {
		f.ids = f.ids[:len(f.ids)-1]
	}
}

func (f *frame) Button(label string) bool {
	f.record(row{kind: rowButton, label: label})
	return f.pressed[label]
}
