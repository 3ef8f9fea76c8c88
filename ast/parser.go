// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

package ast

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"unicode"

	"github.com/quillbit/jval"
)

// ErrExtraInput is reported by ParseSingle when non-blank input remains
// after the first value.
var ErrExtraInput = errors.New("extra data after value")

// Parse parses a single JSON value from c. Leading whitespace is skipped.
// Input following the value is left unconsumed and unexamined; a caller
// that requires the value to be the only content should use ParseSingle.
//
// In case of error, the returned error has concrete type *jval.SyntaxError
// and wraps one of the sentinel errors defined in package jval.
func Parse(c jval.Cursor) (Value, error) {
	p := parser{c: c}
	p.skipSpace()
	return p.parseValue()
}

// ParseSingle parses a single JSON value from c, and verifies that nothing
// except whitespace remains on the input. If trailing content is found, the
// parsed value is returned along with an error wrapping ErrExtraInput.
func ParseSingle(c jval.Cursor) (Value, error) {
	v, err := Parse(c)
	if err != nil {
		return nil, err
	}
	p := parser{c: c}
	p.skipSpace()
	if _, ok := c.Peek(); ok {
		return v, p.fail(ErrExtraInput)
	}
	return v, nil
}

// ParseString parses a single JSON value from the text of s.
func ParseString(s string) (Value, error) { return Parse(jval.NewTextCursor(s)) }

// ParseRunes parses a single JSON value from the runes of rs.
func ParseRunes(rs []rune) (Value, error) { return Parse(jval.NewRuneCursor(rs)) }

// ParseBytes parses a single JSON value from raw bytes, converting them to
// runes with a jval.ByteCursor.
func ParseBytes(data []byte) (Value, error) {
	return Parse(jval.NewByteCursor(bytes.NewReader(data)))
}

// ParseReader parses a single JSON value from the bytes of r, converting
// them to runes with a jval.ByteCursor.
func ParseReader(r io.Reader) (Value, error) { return Parse(jval.NewByteCursor(r)) }

// A parser consumes runes from a cursor and builds a Value tree by
// recursive descent. Each reader consumes exactly the runes belonging to
// its value, leaving trailing input (including whitespace) untouched.
type parser struct {
	c jval.Cursor
}

func (p *parser) fail(err error) error {
	return &jval.SyntaxError{Offset: p.c.Offset(), Err: err}
}

// skipSpace consumes a maximal run of whitespace.
func (p *parser) skipSpace() { p.c.TakeWhile(unicode.IsSpace) }

// parseValue parses a single value of any type, dispatching on the first
// rune without backtracking.
// Precondition: the cursor is at the first non-whitespace rune.
func (p *parser) parseValue() (Value, error) {
	ch, ok := p.c.Peek()
	if !ok {
		return nil, p.fail(jval.ErrUnexpectedEOF)
	}
	switch {
	case ch == '"':
		return p.parseString()
	case ch == 't' || ch == 'f':
		return p.parseBool()
	case ch == 'n':
		return p.parseNull()
	case isNumRune(ch):
		return p.parseNumber()
	case ch == '[':
		return p.parseList()
	case ch == '{':
		return p.parseObject()
	default:
		return nil, p.fail(jval.ErrInvalidValue)
	}
}

// readString consumes a quoted string and returns its raw contents with the
// quotation marks removed and escape sequences intact.
func (p *parser) readString() (string, error) {
	if ch, ok := p.c.Next(); !ok || ch != '"' {
		return "", p.fail(jval.ErrInvalidValue)
	}

	// Consume up to the closing quote. A backslash marks the following rune
	// as escaped, so that an embedded \" does not terminate the string.
	var escaped bool
	text := p.c.TakeWhile(func(ch rune) bool {
		keep := escaped || ch != '"'
		escaped = !escaped && ch == '\\'
		return keep
	})

	// The quote that stopped the scan must be present and unescaped.
	if ch, ok := p.c.Next(); !ok || ch != '"' || escaped {
		return "", p.fail(jval.ErrUnclosedString)
	}
	return text, nil
}

func (p *parser) parseString() (Value, error) {
	pos := p.c.Offset()
	text, err := p.readString()
	if err != nil {
		return nil, err
	}
	return &String{pos: pos, end: p.c.Offset(), text: text}, nil
}

// literal consumes exactly the runes of want, failing if the input ends
// early or deviates. A shorter partial match is not accepted.
func (p *parser) literal(want string) error {
	for _, w := range want {
		if ch, ok := p.c.Next(); !ok || ch != w {
			return p.fail(jval.ErrInvalidValue)
		}
	}
	return nil
}

// parseBool consumes one of the literals "true" or "false".
func (p *parser) parseBool() (Value, error) {
	pos := p.c.Offset()
	ch, ok := p.c.Next()
	if !ok {
		return nil, p.fail(jval.ErrInvalidValue)
	}
	var value bool
	var rest string
	switch ch {
	case 't':
		value, rest = true, "rue"
	case 'f':
		value, rest = false, "alse"
	default:
		return nil, p.fail(jval.ErrInvalidValue)
	}
	if err := p.literal(rest); err != nil {
		return nil, err
	}
	return &Bool{pos: pos, end: p.c.Offset(), value: value}, nil
}

// parseNull consumes the literal "null".
func (p *parser) parseNull() (Value, error) {
	pos := p.c.Offset()
	if err := p.literal("null"); err != nil {
		return nil, err
	}
	return &Null{pos: pos, end: p.c.Offset()}, nil
}

// isNumRune reports whether ch may appear in a number. The class is
// deliberately permissive: multiple dots and stray signs are left for
// ParseFloat to reject, and the exponent markers "e" and "E" are not
// included, so exponent notation is not accepted.
func isNumRune(ch rune) bool {
	return ch == '.' || ch == '+' || ch == '-' || ('0' <= ch && ch <= '9')
}

func (p *parser) parseNumber() (Value, error) {
	pos := p.c.Offset()
	text := p.c.TakeWhile(isNumRune)
	if text == "" {
		return nil, p.fail(jval.ErrInvalidValue)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.fail(jval.ErrInvalidValue)
	}
	return &Number{pos: pos, end: p.c.Offset(), value: value}, nil
}

// parseList consumes a bracketed list of comma-separated values.
func (p *parser) parseList() (Value, error) {
	pos := p.c.Offset()
	if ch, ok := p.c.Next(); !ok || ch != '[' {
		return nil, p.fail(jval.ErrInvalidValue)
	}
	list := &List{pos: pos}

	// Only an empty list may close before a value. After a comma the next
	// element is parsed unconditionally, so a close bracket in value
	// position fails in the dispatch: trailing commas are not accepted.
	p.skipSpace()
	if ch, ok := p.c.Peek(); ok && ch == ']' {
		p.c.Next()
		list.end = p.c.Offset()
		return list, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, v)

		// Scan for the separator or the closing bracket.
		p.skipSpace()
		switch ch, ok := p.c.Next(); {
		case !ok:
			return nil, p.fail(jval.ErrUnclosedList)
		case ch == ']':
			list.end = p.c.Offset()
			return list, nil
		case ch == ',':
			p.skipSpace() // next element
		default:
			return nil, p.fail(jval.ErrMissingSeparator)
		}
	}
}

// parseObject consumes a braced sequence of comma-separated "key": value
// members. Keys must be strings; a non-string key fails through the string
// reader's own errors.
func (p *parser) parseObject() (Value, error) {
	pos := p.c.Offset()
	if ch, ok := p.c.Next(); !ok || ch != '{' {
		return nil, p.fail(jval.ErrInvalidValue)
	}
	obj := &Object{pos: pos}

	// As with lists, only an empty object may close before a member: after
	// a comma the next key is read unconditionally, so a trailing comma
	// fails in the string reader.
	p.skipSpace()
	if ch, ok := p.c.Peek(); ok && ch == '}' {
		p.c.Next()
		obj.end = p.c.Offset()
		return obj, nil
	}
	for {
		mpos := p.c.Offset()
		key, err := p.readString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if ch, ok := p.c.Next(); !ok || ch != ':' {
			return nil, p.fail(jval.ErrMissingSeparator)
		}
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, &Member{
			pos: mpos, end: p.c.Offset(), Key: key, Value: v,
		})

		// Scan for the separator or the closing brace.
		p.skipSpace()
		switch ch, ok := p.c.Next(); {
		case !ok:
			return nil, p.fail(jval.ErrUnclosedObject)
		case ch == '}':
			obj.end = p.c.Offset()
			return obj, nil
		case ch == ',':
			p.skipSpace() // next member
		default:
			return nil, p.fail(jval.ErrMissingSeparator)
		}
	}
}
