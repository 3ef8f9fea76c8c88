package jval

// A Span describes a contiguous range of a source input, measured in runes
// as delivered by the Cursor the input was parsed from.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
