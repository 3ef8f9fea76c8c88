// Copyright (C) 2024 Quillbit Labs. All Rights Reserved.

package ast_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/quillbit/jval"
	"github.com/quillbit/jval/ast"
)

// shape reduces a value tree to plain comparable data, preserving member
// order: objects become [][2]any of key-value pairs, lists become []any.
// String values report their raw (undecoded) text.
func shape(v ast.Value) any {
	switch t := v.(type) {
	case *ast.Object:
		out := make([][2]any, 0, t.Len())
		for _, m := range t.Members {
			out = append(out, [2]any{m.Key, shape(m.Value)})
		}
		return out
	case *ast.List:
		out := make([]any, 0, t.Len())
		for _, e := range t.Values {
			out = append(out, shape(e))
		}
		return out
	case *ast.String:
		return t.Text()
	case *ast.Number:
		return t.Float64()
	case *ast.Bool:
		return t.Value()
	case *ast.Null:
		return nil
	default:
		return fmt.Sprintf("unknown %T", v)
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		// Strings
		{`""`, ""},
		{`"Hello"`, "Hello"},
		{`  "with space"  `, "with space"},
		{`"emb\"edded"`, `emb\"edded`},

		// Escape sequences are preserved verbatim, not decoded.
		{`"a\nb"`, `a\nb`},
		{`"tail\\"`, `tail\\`},

		// Constants
		{"true", true},
		{"false", false},
		{"null", nil},
		{"\n\ttrue", true},

		// Numbers
		{"0", 0.0},
		{"-123.456", -123.456},
		{"+2", 2.0},
		{".5", 0.5},

		// Trailing input after the value is not examined.
		{"true garbage", true},
		{"42@@@", 42.0},

		// Exponent markers stop the number scan; at top level the exponent
		// then reads as ignored trailing data.
		{"1e10", 1.0},

		// Lists
		{"[]", []any{}},
		{"[ \t ]", []any{}},
		{"[1]", []any{1.0}},
		{"[1,2, 3 ,4]", []any{1.0, 2.0, 3.0, 4.0}},
		{`[-654.321, {},[], "Hello",false,null]`,
			[]any{-654.321, [][2]any{}, []any{}, "Hello", false, nil}},
		{"[[[]]]", []any{[]any{[]any{}}}},

		// Objects
		{"{}", [][2]any{}},
		{`{"a":1}`, [][2]any{{"a", 1.0}}},
		{`{ "a" : 1 , "b" : [true] }`, [][2]any{{"a", 1.0}, {"b", []any{true}}}},

		// Duplicate keys are preserved in order, not merged.
		{`{"a":1,"a":2}`, [][2]any{{"a", 1.0}, {"a", 2.0}}},

		{`{"number":-123.456,"object":{},"list":[],"string": "Hello", "bool": true ,"null":null}`,
			[][2]any{
				{"number", -123.456},
				{"object", [][2]any{}},
				{"list", []any{}},
				{"string", "Hello"},
				{"bool", true},
				{"null", nil},
			}},
	}
	for _, test := range tests {
		v, err := ast.ParseString(test.input)
		if err != nil {
			t.Errorf("Input: %#q\nParseString failed: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, shape(v)); diff != "" {
			t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseString_errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", jval.ErrUnexpectedEOF},
		{"   \t\n", jval.ErrUnexpectedEOF},

		{`"unterminated`, jval.ErrUnclosedString},
		{`"`, jval.ErrUnclosedString},
		{`"dangling escape\`, jval.ErrUnclosedString},
		{`"escaped close\"`, jval.ErrUnclosedString},

		{"tru", jval.ErrInvalidValue},
		{"truth", jval.ErrInvalidValue},
		{"fals", jval.ErrInvalidValue},
		{"falsy", jval.ErrInvalidValue},
		{"nul", jval.ErrInvalidValue},
		{"nuLl", jval.ErrInvalidValue},

		{"+-2", jval.ErrInvalidValue},
		{"..", jval.ErrInvalidValue},
		{"1.2.3", jval.ErrInvalidValue},

		{"@", jval.ErrInvalidValue},
		{"]", jval.ErrInvalidValue},

		// A trailing comma puts the dispatch at "]" where a value was
		// expected, so this is an invalid value, not a missing separator.
		{"[1, 2,]", jval.ErrInvalidValue},
		{"[1,]", jval.ErrInvalidValue},
		{"[1, \n]", jval.ErrInvalidValue},

		// The object reader agrees: a trailing comma leaves the key reader
		// looking at "}", which is not a string.
		{`{"a":1,}`, jval.ErrInvalidValue},
		{`{"a": 1, }`, jval.ErrInvalidValue},

		{"[1 2]", jval.ErrMissingSeparator},
		{`["a" "b"]`, jval.ErrMissingSeparator},
		{"[1true]", jval.ErrMissingSeparator},
		{"[1e10]", jval.ErrMissingSeparator},
		{"[1", jval.ErrUnclosedList},
		{"[1,", jval.ErrUnexpectedEOF},
		{"[", jval.ErrUnexpectedEOF},

		{"{", jval.ErrInvalidValue}, // a key was expected
		{"{1:2}", jval.ErrInvalidValue},
		{`{"a"}`, jval.ErrMissingSeparator},
		{`{"a" 1}`, jval.ErrMissingSeparator},
		{`{"a":1 "b":2}`, jval.ErrMissingSeparator},
		{`{"a":1`, jval.ErrUnclosedObject},
		{`{"a":1,`, jval.ErrInvalidValue}, // a key was expected
	}
	for _, test := range tests {
		v, err := ast.ParseString(test.input)
		if err == nil {
			t.Errorf("Input: %#q\nParseString: got %+v, want error %v", test.input, shape(v), test.want)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("Input: %#q\nParseString error: got %v, want %v", test.input, err, test.want)
		}
		var syn *jval.SyntaxError
		if !errors.As(err, &syn) {
			t.Errorf("Input: %#q\nError has type %T, want *jval.SyntaxError", test.input, err)
		}
	}
}

func TestParseString_errorOffset(t *testing.T) {
	_, err := ast.ParseString("[1 2]")
	var syn *jval.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("ParseString: got %v, want a *jval.SyntaxError", err)
	}
	// The scan for a separator consumes the offending "2" before failing.
	if syn.Offset != 4 {
		t.Errorf("Offset: got %d, want 4", syn.Offset)
	}
	if !errors.Is(syn, jval.ErrMissingSeparator) {
		t.Errorf("Err: got %v, want %v", syn.Err, jval.ErrMissingSeparator)
	}
}

func TestParse_spans(t *testing.T) {
	v, err := ast.ParseString(` [1, 2] `)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if got, want := v.Span(), (jval.Span{Pos: 1, End: 7}); got != want {
		t.Errorf("List span: got %+v, want %+v", got, want)
	}
	list := v.(*ast.List)
	if got, want := list.Values[0].Span(), (jval.Span{Pos: 2, End: 3}); got != want {
		t.Errorf("First value span: got %+v, want %+v", got, want)
	}
	if got, want := list.Values[1].Span(), (jval.Span{Pos: 5, End: 6}); got != want {
		t.Errorf("Second value span: got %+v, want %+v", got, want)
	}
}

func TestParseSingle(t *testing.T) {
	t.Run("CleanInput", func(t *testing.T) {
		v, err := ast.ParseSingle(jval.NewTextCursor("  [1, 2]\n"))
		if err != nil {
			t.Fatalf("ParseSingle: unexpected error: %v", err)
		}
		if diff := cmp.Diff([]any{1.0, 2.0}, shape(v)); diff != "" {
			t.Errorf("Value: (-want, +got)\n%s", diff)
		}
	})
	t.Run("TrailingData", func(t *testing.T) {
		v, err := ast.ParseSingle(jval.NewTextCursor("[1, 2] extra"))
		if !errors.Is(err, ast.ErrExtraInput) {
			t.Fatalf("ParseSingle: got error %v, want %v", err, ast.ErrExtraInput)
		}
		if v == nil {
			t.Error("ParseSingle: missing value alongside ErrExtraInput")
		}
	})
	t.Run("ParseError", func(t *testing.T) {
		v, err := ast.ParseSingle(jval.NewTextCursor("[1, 2"))
		if !errors.Is(err, jval.ErrUnclosedList) {
			t.Fatalf("ParseSingle: got error %v, want %v", err, jval.ErrUnclosedList)
		}
		if v != nil {
			t.Errorf("ParseSingle: got value %+v, want nil", shape(v))
		}
	})
}

// All entry points must agree on ASCII input, where the byte adapter is an
// exact conversion.
func TestParse_entryPoints(t *testing.T) {
	const input = `{"a": [-654.321, {}, [], "Hello", false, null], "a": 2}`

	want, err := ast.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	parsers := map[string]func() (ast.Value, error){
		"ParseRunes":  func() (ast.Value, error) { return ast.ParseRunes([]rune(input)) },
		"ParseBytes":  func() (ast.Value, error) { return ast.ParseBytes([]byte(input)) },
		"ParseReader": func() (ast.Value, error) { return ast.ParseReader(strings.NewReader(input)) },
	}
	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			got, err := parse()
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if diff := cmp.Diff(shape(want), shape(got)); diff != "" {
				t.Errorf("Value differs from ParseString: (-want, +got)\n%s", diff)
			}
		})
	}
}

// plain reduces a value tree to the representation used by encoding/json
// and its drop-in replacements: objects become maps (later duplicate keys
// win), lists become []any. Only usable for comparisons where member order
// and raw string text do not matter.
func plain(v ast.Value) any {
	switch t := v.(type) {
	case *ast.Object:
		out := make(map[string]any, t.Len())
		for _, m := range t.Members {
			out[m.Key] = plain(m.Value)
		}
		return out
	case *ast.List:
		out := make([]any, 0, t.Len())
		for _, e := range t.Values {
			out = append(out, plain(e))
		}
		return out
	case *ast.String:
		return t.Text()
	case *ast.Number:
		return t.Float64()
	case *ast.Bool:
		return t.Value()
	case *ast.Null:
		return nil
	default:
		return fmt.Sprintf("unknown %T", v)
	}
}

// Differential check against a production JSON decoder, on the subset of
// the grammar both accept: no escape sequences, no exponents, unique keys.
func TestParse_differential(t *testing.T) {
	tests := []string{
		`42`,
		`-0.5`,
		`"plain text"`,
		`true`,
		`false`,
		`null`,
		`[]`,
		`{}`,
		`[1, [2, []], "x", null]`,
		`{"a": 1, "b": [true, null], "c": {"d": "e"}}`,
		`  [ {"k": [0.125, -7]} , "done" ]  `,
	}
	for _, input := range tests {
		got, err := ast.ParseString(input)
		if err != nil {
			t.Errorf("Input: %#q\nParseString failed: %v", input, err)
			continue
		}
		var want any
		if err := gojson.Unmarshal([]byte(input), &want); err != nil {
			t.Fatalf("Input: %#q\nUnmarshal failed: %v", input, err)
		}
		if diff := cmp.Diff(want, plain(got), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", input, diff)
		}
	}
}
