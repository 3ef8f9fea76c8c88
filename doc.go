// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

// Package jval implements a character-level JSON parser built on a
// peekable cursor abstraction.
//
// # Cursors
//
// The Cursor interface is the input abstraction consumed by the parser: a
// sequential reader over runes that supports viewing the next rune without
// consuming it, and bulk consumption that stops cleanly at the first rune a
// predicate rejects. Three implementations are provided:
//
//   - TextCursor reads the runes of a string.
//   - RuneCursor reads an explicit rune sequence.
//   - ByteCursor adapts a raw byte stream with a best-effort byte-to-rune
//     conversion (not a UTF-8 decoder; see the type documentation).
//
// # Parsing
//
// The parser itself lives in the ast subpackage. It consumes a Cursor and
// constructs a tree of ast.Value:
//
//	v, err := ast.ParseString(`{"a": [1, 2, null]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Errors reported by the parser have concrete type *SyntaxError and wrap
// one of the sentinel errors defined in this package, so callers can
// classify failures with errors.Is:
//
//	if errors.Is(err, jval.ErrUnclosedString) { ... }
//
// # Limitations
//
// The grammar accepted here is deliberately small. Escape sequences inside
// strings are preserved verbatim rather than decoded (see ast.String).
// Numbers are read from a permissive character class that excludes the
// exponent markers "e" and "E", so exponent notation is not accepted. The
// parser recurses once per nesting level and imposes no depth limit of its
// own.
package jval
