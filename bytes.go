// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

package jval

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// A ByteCursor adapts a raw byte stream into a Cursor over runes.
//
// The adapter accumulates up to four bytes big-endian into a single value,
// testing after each byte whether the accumulated value is a valid Unicode
// scalar, and emits the first valid scalar found. An accumulation that is
// still invalid when the input ends is silently dropped. This is a
// best-effort conversion, not a UTF-8 decoder: multi-byte UTF-8 encodings
// come out as one rune per byte. ASCII input converts faithfully.
type ByteCursor struct {
	r   *bufio.Reader
	cur rune
	ok  bool // cur holds an undelivered lookahead rune
	off int
}

// NewByteCursor constructs a ByteCursor reading bytes from r.
func NewByteCursor(r io.Reader) *ByteCursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &ByteCursor{r: br}
}

// Peek reports the next rune of the input without consuming it.
func (c *ByteCursor) Peek() (rune, bool) {
	if !c.ok {
		c.cur, c.ok = c.decode()
	}
	return c.cur, c.ok
}

// Next consumes and returns the next rune of the input.
func (c *ByteCursor) Next() (rune, bool) {
	ch, ok := c.Peek()
	if ok {
		c.ok = false
		c.off++
	}
	return ch, ok
}

// TakeWhile consumes a maximal prefix of runes satisfying f.
func (c *ByteCursor) TakeWhile(f func(rune) bool) string {
	var sb strings.Builder
	for {
		ch, ok := c.Peek()
		if !ok || !f(ch) {
			return sb.String()
		}
		c.Next()
		sb.WriteRune(ch)
	}
}

// Offset reports the number of runes consumed so far.
func (c *ByteCursor) Offset() int { return c.off }

// decode accumulates bytes until the accumulated value forms a valid
// Unicode scalar. Read errors are treated as end of input.
func (c *ByteCursor) decode() (rune, bool) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := c.r.ReadByte()
		if err != nil {
			return 0, false
		}
		v = v<<8 | uint32(b)
		if ch := rune(v); utf8.ValidRune(ch) {
			return ch, true
		}
	}
	return 0, false
}
