// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

package jval

import "unicode/utf8"

// A Cursor is a peekable sequential reader over runes. It is the input
// abstraction consumed by the parser.
//
// The TakeWhile contract is the load-bearing part: the first rune rejected
// by the predicate must be left unconsumed, so that it remains available to
// a subsequent Peek or Next. Implementations that consume the failing rune
// will drop characters; implementations that never consume will loop.
type Cursor interface {
	// Peek reports the next rune without consuming it.
	// It reports false at the end of input.
	Peek() (rune, bool)

	// Next consumes and returns the next rune.
	// It reports false at the end of input.
	Next() (rune, bool)

	// TakeWhile consumes a maximal run of runes for which f reports true,
	// and returns the consumed runes. The first rune rejected by f is not
	// consumed.
	TakeWhile(f func(rune) bool) string

	// Offset reports the number of runes consumed so far.
	Offset() int
}

// A TextCursor is a Cursor over the runes of a string.
type TextCursor struct {
	rest string
	off  int
}

// NewTextCursor constructs a TextCursor reading the runes of s.
func NewTextCursor(s string) *TextCursor { return &TextCursor{rest: s} }

// Peek reports the next rune of the input without consuming it.
func (c *TextCursor) Peek() (rune, bool) {
	if c.rest == "" {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(c.rest)
	return ch, true
}

// Next consumes and returns the next rune of the input.
func (c *TextCursor) Next() (rune, bool) {
	if c.rest == "" {
		return 0, false
	}
	ch, n := utf8.DecodeRuneInString(c.rest)
	c.rest = c.rest[n:]
	c.off++
	return ch, true
}

// TakeWhile consumes a maximal prefix of runes satisfying f.
func (c *TextCursor) TakeWhile(f func(rune) bool) string {
	end := len(c.rest)
	for i, ch := range c.rest {
		if !f(ch) {
			end = i
			break
		}
		c.off++
	}
	out := c.rest[:end]
	c.rest = c.rest[end:]
	return out
}

// Offset reports the number of runes consumed so far.
func (c *TextCursor) Offset() int { return c.off }

// A RuneCursor is a Cursor over an explicit rune sequence.
// The sequence is not copied; the caller must not modify it while the
// cursor is in use.
type RuneCursor struct {
	buf []rune
	off int
}

// NewRuneCursor constructs a RuneCursor reading the runes of rs.
func NewRuneCursor(rs []rune) *RuneCursor { return &RuneCursor{buf: rs} }

// Peek reports the next rune of the input without consuming it.
func (c *RuneCursor) Peek() (rune, bool) {
	if c.off >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.off], true
}

// Next consumes and returns the next rune of the input.
func (c *RuneCursor) Next() (rune, bool) {
	ch, ok := c.Peek()
	if ok {
		c.off++
	}
	return ch, ok
}

// TakeWhile consumes a maximal prefix of runes satisfying f.
func (c *RuneCursor) TakeWhile(f func(rune) bool) string {
	start := c.off
	for c.off < len(c.buf) && f(c.buf[c.off]) {
		c.off++
	}
	return string(c.buf[start:c.off])
}

// Offset reports the number of runes consumed so far.
func (c *RuneCursor) Offset() int { return c.off }
