package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/studiowebux/cfgedit/internal/errors"
)

// DefaultIndent is the number of spaces per object nesting level
const DefaultIndent = 4

// Serialize writes v as UTF-8 JSON. Objects are printed one member per line,
// indented by indent spaces per level. Arrays always stay on a single line,
// including any objects nested inside them. A negative indent selects
// DefaultIndent.
func Serialize(v *Value, indent int) ([]byte, error) {
	if indent < 0 {
		indent = DefaultIndent
	}
	w := &writer{indent: strings.Repeat(" ", indent)}
	if err := w.write(v, 0, false); err != nil {
		return nil, err
	}
	w.buf.WriteByte('\n')
	return w.buf.Bytes(), nil
}

// Compact renders v on a single line, the way arrays are written
func Compact(v *Value) (string, error) {
	w := &writer{}
	if err := w.write(v, 0, true); err != nil {
		return "", err
	}
	return w.buf.String(), nil
}

// FormatFloat renders f so that it re-parses as a real number: the result
// always carries a fraction or an exponent.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.ErrNonFinite
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64), nil
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

type writer struct {
	buf    bytes.Buffer
	indent string
}

func (w *writer) newline(level int) {
	w.buf.WriteByte('\n')
	for i := 0; i < level; i++ {
		w.buf.WriteString(w.indent)
	}
}

func (w *writer) write(v *Value, level int, inline bool) error {
	switch v.Kind() {
	case KindNull:
		w.buf.WriteString("null")
	case KindBool:
		w.buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		w.buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		s, err := FormatFloat(v.f)
		if err != nil {
			return fmt.Errorf("cannot serialize %v: %w", v.f, err)
		}
		w.buf.WriteString(s)
	case KindString:
		w.writeString(v.s)
	case KindArray:
		w.buf.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				w.buf.WriteString(", ")
			}
			if err := w.write(e, level, true); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
	case KindObject:
		if len(v.members) == 0 {
			w.buf.WriteString("{}")
			return nil
		}
		w.buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if inline {
				if i > 0 {
					w.buf.WriteByte(' ')
				}
			} else {
				w.newline(level + 1)
			}
			w.writeString(m.Key)
			w.buf.WriteString(": ")
			if err := w.write(m.Value, level+1, inline); err != nil {
				return err
			}
		}
		if !inline {
			w.newline(level)
		}
		w.buf.WriteByte('}')
	}
	return nil
}

func (w *writer) writeString(s string) {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	// Encoding a Go string cannot fail
	_ = enc.Encode(s)
	w.buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
}
