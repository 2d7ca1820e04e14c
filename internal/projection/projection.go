package projection

import (
	"fmt"

	"github.com/studiowebux/cfgedit/internal/color"
	"github.com/studiowebux/cfgedit/internal/value"
)

// TreeFlags control how a group is presented
type TreeFlags int

const (
	// TreeDefaultOpen starts the group expanded until the user collapses it
	TreeDefaultOpen TreeFlags = 1 << iota
	// TreeAlwaysOpen groups cannot be collapsed
	TreeAlwaysOpen
)

// Has reports whether all bits of f are set
func (t TreeFlags) Has(f TreeFlags) bool {
	return t&f == f
}

// Widgets is the set of primitive controls a frontend supplies. Every
// editing control returns the committed value and true when the user
// changed it during this frame, otherwise the value passed in and false.
type Widgets interface {
	Label(label, text string)
	Toggle(label string, v bool) (bool, bool)
	InputInt(label string, v int64) (int64, bool)
	InputFloat(label string, v float64) (float64, bool)
	InputText(label string, v string) (string, bool)
	ColorEdit(label string, rgba [4]float64, channels int) ([4]float64, bool)

	// TreeNode opens a group and reports whether its children are shown.
	// TreePop is only called when TreeNode returned true.
	TreeNode(label string, flags TreeFlags) bool
	TreePop()

	// Skip reports n identities consumed without any control
	Skip(n int)

	PushID(id int)
	PopID()

	Button(label string) bool
}

// NullText is shown for null values
const NullText = "null"

// Project renders v under label and applies any committed edits in place.
// ids is the frame's identity counter; it is pre-incremented once for v
// and once for every descendant. The return value reports whether the
// document changed.
func Project(w Widgets, label string, v *value.Value, depth int, ids *int) bool {
	*ids++
	w.PushID(*ids)
	defer w.PopID()

	switch v.Kind() {
	case value.KindNull:
		w.Label(label, NullText)

	case value.KindBool:
		if b, ok := w.Toggle(label, v.Bool()); ok {
			v.SetBool(b)
			return true
		}

	case value.KindInt:
		if i, ok := w.InputInt(label, v.Int()); ok {
			v.SetInt(i)
			return true
		}

	case value.KindFloat:
		if f, ok := w.InputFloat(label, v.Float()); ok {
			v.SetFloat(f)
			return true
		}

	case value.KindString:
		if s, ok := w.InputText(label, v.Str()); ok {
			v.SetString(s)
			return true
		}

	case value.KindArray:
		if shape, ok := color.Detect(label, v); ok {
			return projectColor(w, label, v, shape, ids)
		}
		return projectArray(w, label, v, depth, ids)

	case value.KindObject:
		return projectObject(w, label, v, depth, ids)
	}

	return false
}

func projectColor(w Widgets, label string, v *value.Value, shape color.Shape, ids *int) bool {
	skip(w, v, ids)
	rgba, ok := w.ColorEdit(label, shape.RGBA(v), shape.Channels)
	if !ok {
		return false
	}
	shape.Apply(v, rgba)
	return true
}

func projectArray(w Widgets, label string, v *value.Value, depth int, ids *int) bool {
	if !w.TreeNode(label, groupFlags(depth)) {
		skip(w, v, ids)
		return false
	}
	defer w.TreePop()

	changed := false
	for i, e := range v.Elements() {
		if Project(w, fmt.Sprintf("%s[%d]", label, i), e, depth+1, ids) {
			changed = true
		}
	}
	return changed
}

func projectObject(w Widgets, label string, v *value.Value, depth int, ids *int) bool {
	if !w.TreeNode(label, groupFlags(depth)) {
		skip(w, v, ids)
		return false
	}
	defer w.TreePop()

	changed := false
	for _, m := range v.Members() {
		if Project(w, m.Key, m.Value, depth+1, ids) {
			changed = true
		}
	}
	return changed
}

func groupFlags(depth int) TreeFlags {
	if depth == 0 {
		return TreeDefaultOpen | TreeAlwaysOpen
	}
	return TreeDefaultOpen
}

// skip advances the counter past every descendant of v
func skip(w Widgets, v *value.Value, ids *int) {
	n := v.Count()
	if n == 0 {
		return
	}
	*ids += n
	w.Skip(n)
}
