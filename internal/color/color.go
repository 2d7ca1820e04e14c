// Package color decides which arrays of a document are edited as colors
// and converts between their stored form and unit RGBA.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/studiowebux/cfgedit/internal/value"
)

// Encoding is how the channels of a color array are stored
type Encoding int

const (
	// Byte channels are integers in [0,255]
	Byte Encoding = iota
	// Unit channels are reals in [0,1]
	Unit
)

// Shape describes a detected color array
type Shape struct {
	Encoding Encoding
	Channels int // 3 (RGB) or 4 (RGBA)
}

// HasAlpha reports whether the array stores an alpha channel
func (s Shape) HasAlpha() bool {
	return s.Channels == 4
}

func (s Shape) String() string {
	enc := "byte"
	if s.Encoding == Unit {
		enc = "unit"
	}
	if s.HasAlpha() {
		return enc + " RGBA"
	}
	return enc + " RGB"
}

// nameSuffixes are matched case-sensitively
var nameSuffixes = []string{"Color", "Colour", "color", "colour"}

// IsColorName reports whether a field name asks for a color picker
func IsColorName(name string) bool {
	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Detect returns the color shape of v when the field name and the array
// contents both look like a color: 3 or 4 elements, all integers in
// [0,255] or all reals in [0,1].
func Detect(name string, v *value.Value) (Shape, bool) {
	if !IsColorName(name) || v.Kind() != value.KindArray {
		return Shape{}, false
	}
	n := v.Len()
	if n != 3 && n != 4 {
		return Shape{}, false
	}

	allByte, allUnit := true, true
	for _, e := range v.Elements() {
		switch e.Kind() {
		case value.KindInt:
			allUnit = false
			if e.Int() < 0 || e.Int() > 255 {
				allByte = false
			}
		case value.KindFloat:
			allByte = false
			if e.Float() < 0 || e.Float() > 1 {
				allUnit = false
			}
		default:
			return Shape{}, false
		}
	}

	switch {
	case allByte:
		return Shape{Encoding: Byte, Channels: n}, true
	case allUnit:
		return Shape{Encoding: Unit, Channels: n}, true
	default:
		return Shape{}, false
	}
}

// RGBA reads v as unit channels. A missing alpha reads as fully opaque.
func (s Shape) RGBA(v *value.Value) [4]float64 {
	rgba := [4]float64{0, 0, 0, 1}
	for i := 0; i < s.Channels && i < v.Len(); i++ {
		e := v.Index(i)
		if s.Encoding == Byte {
			rgba[i] = float64(e.Int()) / 255.0
		} else {
			rgba[i] = e.Float()
		}
	}
	return rgba
}

// Apply writes rgba back into v using the stored encoding. Only the
// channels the array originally had are written; a 3-element color stays
// 3 elements.
func (s Shape) Apply(v *value.Value, rgba [4]float64) {
	for i := 0; i < s.Channels && i < v.Len(); i++ {
		c := clamp01(rgba[i])
		if s.Encoding == Byte {
			v.Index(i).SetInt(int64(math.Round(c * 255)))
		} else {
			v.Index(i).SetFloat(c)
		}
	}
}

func clamp01(c float64) float64 {
	if math.IsNaN(c) || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Colorful converts unit channels to a go-colorful color (alpha dropped)
func Colorful(rgba [4]float64) colorful.Color {
	return colorful.Color{R: clamp01(rgba[0]), G: clamp01(rgba[1]), B: clamp01(rgba[2])}
}

// Hex formats unit channels as #rrggbb, or #rrggbbaa when channels is 4
func Hex(rgba [4]float64, channels int) string {
	hex := Colorful(rgba).Hex()
	if channels == 4 {
		hex += fmt.Sprintf("%02x", uint8(math.Round(clamp01(rgba[3])*255)))
	}
	return hex
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa (the leading # is optional).
// It returns unit channels and how many channels the text carried.
func ParseHex(s string) ([4]float64, int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	rgba := [4]float64{0, 0, 0, 1}
	channels := 3
	rgb := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return rgba, 0, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		rgba[3] = float64(a) / 255.0
		channels = 4
		rgb = s[:7]
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return rgba, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	rgba[0] = float64(r) / 255.0
	rgba[1] = float64(g) / 255.0
	rgba[2] = float64(b) / 255.0
	return rgba, channels, nil
}
