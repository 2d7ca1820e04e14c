package value

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the JSON-ish name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed JSON document.
//
// Containers hold their children by pointer, so a *Value obtained from Index,
// Get or Members is a handle to the live node: mutating it mutates the
// document.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	elems   []*Value
	members []Member
}

// Member is one key/value pair of an object, in document order
type Member struct {
	Key   string
	Value *Value
}

// NewNull returns a null value
func NewNull() *Value {
	return &Value{kind: KindNull}
}

// NewBool returns a bool value
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// NewInt returns an integer value
func NewInt(i int64) *Value {
	return &Value{kind: KindInt, i: i}
}

// NewFloat returns a real value
func NewFloat(f float64) *Value {
	return &Value{kind: KindFloat, f: f}
}

// NewString returns a string value
func NewString(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// NewArray returns an array holding elems in order
func NewArray(elems ...*Value) *Value {
	return &Value{kind: KindArray, elems: elems}
}

// NewObject returns an object holding members in order.
// Later members replace earlier ones with the same key.
func NewObject(members ...Member) *Value {
	v := &Value{kind: KindObject}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return v
}

// Kind returns the variant held by v
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNumber reports whether v is an Int or a Float
func (v *Value) IsNumber() bool {
	k := v.Kind()
	return k == KindInt || k == KindFloat
}

// Bool returns the boolean payload (false for other kinds)
func (v *Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Int returns the integer payload (0 for other kinds)
func (v *Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}
	return v.i
}

// Float returns the numeric payload as a float64.
// Integers are converted; other kinds return 0.
func (v *Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	default:
		return 0
	}
}

// Str returns the string payload ("" for other kinds)
func (v *Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// SetNull turns v into null
func (v *Value) SetNull() {
	*v = Value{kind: KindNull}
}

// SetBool turns v into a bool holding b
func (v *Value) SetBool(b bool) {
	*v = Value{kind: KindBool, b: b}
}

// SetInt turns v into an integer holding i
func (v *Value) SetInt(i int64) {
	*v = Value{kind: KindInt, i: i}
}

// SetFloat turns v into a real holding f
func (v *Value) SetFloat(f float64) {
	*v = Value{kind: KindFloat, f: f}
}

// SetString turns v into a string holding s
func (v *Value) SetString(s string) {
	*v = Value{kind: KindString, s: s}
}

// Len returns the number of elements or members (0 for scalars)
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns the i-th array element, or nil when out of range
func (v *Value) Index(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// Elements returns the array elements in order
func (v *Value) Elements() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.elems
}

// Append adds elem to the end of an array
func (v *Value) Append(elem *Value) {
	if v.kind != KindArray {
		return
	}
	v.elems = append(v.elems, elem)
}

// Members returns the object members in document order
func (v *Value) Members() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	return v.members
}

// Get returns the member value for key, or nil
func (v *Value) Get(key string) *Value {
	if v.Kind() != KindObject {
		return nil
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Set replaces the value of key in place, or appends a new member
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		return
	}
	for i := range v.members {
		if v.members[i].Key == key {
			v.members[i].Value = val
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Count returns the number of nodes below v (v itself excluded)
func (v *Value) Count() int {
	n := 0
	switch v.Kind() {
	case KindArray:
		for _, e := range v.elems {
			n += 1 + e.Count()
		}
	case KindObject:
		for _, m := range v.members {
			n += 1 + m.Value.Count()
		}
	}
	return n
}

// Equal reports structural equality: same kinds (numeric subtype
// included), same payloads, same member keys in the same order.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(other.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != other.members[i].Key {
				return false
			}
			if !v.members[i].Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of v
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	if v.elems != nil {
		c.elems = make([]*Value, len(v.elems))
		for i, e := range v.elems {
			c.elems[i] = e.Clone()
		}
	}
	if v.members != nil {
		c.members = make([]Member, len(v.members))
		for i, m := range v.members {
			c.members[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}
	}
	return &c
}

// maxExactInt is the largest integer magnitude a float64 holds exactly
const maxExactInt = 1 << 53

// Interface returns a plain Go view of v (nil, bool, float64, string,
// []interface{}, map[string]interface{}), the shape expected by query
// libraries. Integers become float64 when that is exact; larger ones
// become a json.Number holding their digits, so they are selected and
// printed unchanged but do not take part in numeric comparisons.
func (v *Value) Interface() interface{} {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindInt:
		if v.i > maxExactInt || v.i < -maxExactInt {
			return json.Number(strconv.FormatInt(v.i, 10))
		}
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.members))
		for _, m := range v.members {
			out[m.Key] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
