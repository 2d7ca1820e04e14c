package value

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/studiowebux/cfgedit/internal/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding names a Unicode encoding detected on input
type Encoding string

const (
	EncodingUTF8    Encoding = "UTF-8"
	EncodingUTF16LE Encoding = "UTF-16LE"
	EncodingUTF16BE Encoding = "UTF-16BE"
	EncodingUTF32LE Encoding = "UTF-32LE"
	EncodingUTF32BE Encoding = "UTF-32BE"
)

// DetectEncoding inspects the leading bytes of data and returns the
// encoding and the length of the byte order mark, if any.
// Without a BOM the zero-byte pattern of the first four bytes decides,
// since the first character of a JSON text is always ASCII.
func DetectEncoding(data []byte) (Encoding, int) {
	switch {
	case bytes.HasPrefix(data, []byte{0x00, 0x00, 0xFE, 0xFF}):
		return EncodingUTF32BE, 4
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE, 0x00, 0x00}):
		return EncodingUTF32LE, 4
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8, 3
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE, 2
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE, 2
	}

	if len(data) >= 4 {
		switch {
		case data[0] == 0 && data[1] == 0 && data[2] == 0 && data[3] != 0:
			return EncodingUTF32BE, 0
		case data[0] != 0 && data[1] == 0 && data[2] == 0 && data[3] == 0:
			return EncodingUTF32LE, 0
		}
	}
	if len(data) >= 2 {
		switch {
		case data[0] == 0 && data[1] != 0:
			return EncodingUTF16BE, 0
		case data[0] != 0 && data[1] == 0:
			return EncodingUTF16LE, 0
		}
	}
	return EncodingUTF8, 0
}

func decoderFor(enc Encoding) encoding.Encoding {
	switch enc {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case EncodingUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case EncodingUTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	default:
		return nil
	}
}

// ToUTF8 transcodes data to UTF-8, dropping any byte order mark
func ToUTF8(data []byte) ([]byte, Encoding, error) {
	enc, bomLen := DetectEncoding(data)
	data = data[bomLen:]

	dec := decoderFor(enc)
	if dec == nil {
		return data, enc, nil
	}
	out, err := dec.NewDecoder().Bytes(data)
	if err != nil {
		return nil, enc, fmt.Errorf("failed to decode %s input: %w", enc, err)
	}
	return out, enc, nil
}

// Parse decodes a JSON document in any common Unicode encoding.
// On failure it returns a parse error and no value.
func Parse(data []byte) (*Value, error) {
	text, enc, err := ToUTF8(data)
	if err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("invalid %s text", enc), errors.ErrMalformed)
	}
	if off := invalidUTF8(text); off >= 0 {
		return nil, errors.NewParseError(
			fmt.Sprintf("invalid UTF-8 at offset %d", off),
			errors.ErrMalformed,
		)
	}
	if len(bytes.TrimSpace(text)) == 0 {
		return nil, errors.NewParseError("document contains no value", errors.ErrEmptyDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	p := &parser{dec: dec}
	root, err := p.parseValue()
	if err != nil {
		return nil, p.wrap(err)
	}

	// Only whitespace may follow the root value
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, p.wrap(err)
		}
		return nil, errors.NewParseError(
			fmt.Sprintf("unexpected data at offset %d", dec.InputOffset()),
			errors.ErrTrailingData,
		)
	}

	return root, nil
}

// invalidUTF8 returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1. Such bytes would not survive a save.
func invalidUTF8(text []byte) int {
	for off := 0; off < len(text); {
		r, size := utf8.DecodeRune(text[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}
		off += size
	}
	return -1
}

// ParseString parses a JSON document held in a Go string
func ParseString(s string) (*Value, error) {
	return Parse([]byte(s))
}

type parser struct {
	dec *json.Decoder
}

func (p *parser) wrap(err error) error {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewParseError(
			fmt.Sprintf("syntax error at offset %d", syntaxErr.Offset),
			errors.ErrMalformed,
		)
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParseError("unexpected end of document", errors.ErrMalformed)
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.NewParseError(
		fmt.Sprintf("invalid document at offset %d", p.dec.InputOffset()),
		errors.ErrMalformed,
	)
}

func (p *parser) parseValue() (*Value, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return nil, err
	}
	return p.fromToken(tok)
}

func (p *parser) fromToken(tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		return p.number(t)
	case json.Delim:
		switch t {
		case '[':
			return p.parseArray()
		case '{':
			return p.parseObject()
		}
	}
	return nil, errors.NewParseError(
		fmt.Sprintf("unexpected token at offset %d", p.dec.InputOffset()),
		errors.ErrMalformed,
	)
}

// number keeps the integer/real distinction of the literal
func (p *parser) number(n json.Number) (*Value, error) {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return NewInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, errors.NewParseError(
			fmt.Sprintf("number %s out of range at offset %d", lit, p.dec.InputOffset()),
			errors.ErrMalformed,
		)
	}
	return NewFloat(f), nil
}

func (p *parser) parseArray() (*Value, error) {
	arr := NewArray()
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		elem, err := p.fromToken(tok)
		if err != nil {
			return nil, err
		}
		arr.elems = append(arr.elems, elem)
	}
}

func (p *parser) parseObject() (*Value, error) {
	obj := &Value{kind: KindObject}
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.NewParseError(
				fmt.Sprintf("object key expected at offset %d", p.dec.InputOffset()),
				errors.ErrMalformed,
			)
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// Duplicate keys keep the first position and the last value
		obj.Set(key, val)
	}
}
