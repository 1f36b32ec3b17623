package highlight

// Span is a single-character highlight produced by a Sequence.
type Span struct {
	// Start is the rune offset of the bracket. End is always Start+1;
	// spans never cover more than one character.
	Start int
	End   int

	// Kind is the bracket that produced the span.
	Kind Kind

	// Depth is the family nesting depth at the bracket: zero for an
	// outermost bracket, increasing inward. A close bracket with no
	// matching open yields a negative depth.
	Depth int

	// ColorIndex selects the palette color: Depth modulo the palette
	// size, with negative depths pinned to the first color.
	ColorIndex int
}
