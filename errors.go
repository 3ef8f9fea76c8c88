// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the parser. Every error returned across the
// parsing API is a *SyntaxError wrapping one of these values; use errors.Is
// to classify a failure.
var (
	// ErrInvalidValue: an unexpected rune where a value, boolean, or null
	// literal was expected, or a malformed number.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnclosedString: a string's closing quote was never found, or the
	// input ended while an escape was pending.
	ErrUnclosedString = errors.New("unclosed string")

	// ErrUnclosedList: the input ended before a list's closing bracket.
	ErrUnclosedList = errors.New("unclosed list")

	// ErrUnclosedObject: the input ended before an object's closing brace.
	ErrUnclosedObject = errors.New("unclosed object")

	// ErrMissingSeparator: an expected "," or ":" (or a terminator in
	// separator position) was not found.
	ErrMissingSeparator = errors.New("missing separator")

	// ErrUnexpectedEOF: the input ended where a value was expected to begin.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset int   // rune offset at which the error was detected
	Err    error // the underlying sentinel error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %v", e.Offset, e.Err)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Err }
