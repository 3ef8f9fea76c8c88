// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

// Package ast defines a tree representation for JSON values, and a parser
// that constructs value trees from JSON source.
package ast

import (
	"strconv"

	"github.com/quillbit/jval"
	"github.com/quillbit/jval/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete type is one of *List,
// *Object, *String, *Number, *Bool, or *Null. A Value records the span of
// source it was parsed from, and is immutable once constructed.
type Value interface{ Span() jval.Span }

func newSpan(pos, end int) jval.Span { return jval.Span{Pos: pos, End: end} }

// An Object is an ordered collection of key-value members. Members appear
// in source order, and duplicate keys are preserved rather than merged.
type Object struct {
	pos, end int

	Members []*Member
}

// Span satisfies the Value interface.
func (o *Object) Span() jval.Span { return newSpan(o.pos, o.end) }

// Find returns the first member of o with the given key, or nil. The key
// is matched against the raw (undecoded) member key.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// A Member is a single key-value pair belonging to an Object. The key is
// stored raw, with the quotation marks removed but escape sequences intact.
type Member struct {
	pos, end int

	Key   string
	Value Value
}

// Span satisfies the Value interface.
func (m *Member) Span() jval.Span { return newSpan(m.pos, m.end) }

// A List is an ordered sequence of values.
type List struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (l *List) Span() jval.Span { return newSpan(l.pos, l.end) }

// Len reports the number of values in l.
func (l *List) Len() int { return len(l.Values) }

// A String is a string value. Its text is the raw content between the
// quotation marks: escape sequences are preserved verbatim, not decoded.
type String struct {
	pos, end int
	text     string
}

// Span satisfies the Value interface.
func (s *String) Span() jval.Span { return newSpan(s.pos, s.end) }

// Text returns the raw text of s with escape sequences intact.
func (s *String) Text() string { return s.text }

// Len reports the length in bytes of the raw text of s.
func (s *String) Len() int { return len(s.text) }

// Unescape returns the text of s with escape sequences decoded.
// It panics if s contains an incomplete escape sequence.
func (s *String) Unescape() string {
	dec, err := escape.Unquote(mem.S(s.text))
	if err != nil {
		panic(err)
	}
	return string(dec)
}

// A Number is a numeric value, represented in 64-bit floating point.
type Number struct {
	pos, end int
	value    float64
}

// Span satisfies the Value interface.
func (n *Number) Span() jval.Span { return newSpan(n.pos, n.end) }

// Float64 reports the value of n.
func (n *Number) Float64() float64 { return n.value }

// Text returns the shortest decimal representation of n.
func (n *Number) Text() string { return strconv.FormatFloat(n.value, 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	pos, end int
	value    bool
}

// Span satisfies the Value interface.
func (b *Bool) Span() jval.Span { return newSpan(b.pos, b.end) }

// Value reports the truth value of b.
func (b *Bool) Value() bool { return b.value }

// Null represents the JSON null constant.
type Null struct {
	pos, end int
}

// Span satisfies the Value interface.
func (n *Null) Span() jval.Span { return newSpan(n.pos, n.end) }
