// Package classify answers "what kind of token is at this offset" for
// the highlight scanner.
//
// Providers report classifications for the categories the scanner may
// need to skip: string literals, character literals, and comments. A
// provider is free to ignore everything else; an offset with no
// interesting classification simply reports no match.
package classify

// Token categories. These are the values the highlight engine matches
// against its skip sets.
const (
	CategoryCharacter   = "character"
	CategoryComment     = "comment"
	CategoryCommentLine = "commentline"
	CategoryString      = "string"
)

// Classification describes a classified token span. Start and End are
// rune offsets; End is exclusive.
type Classification struct {
	Category string
	Start    int
	End      int
}

// Contains reports whether the classification covers the given offset.
func (c Classification) Contains(offset int) bool {
	return offset >= c.Start && offset < c.End
}

// Len returns the span length in runes.
func (c Classification) Len() int {
	return c.End - c.Start
}

// Classifier reports the classification covering an offset, if the
// provider has one. Implementations must be safe for repeated calls
// with monotonically non-decreasing offsets; they need not be safe for
// concurrent use.
type Classifier interface {
	ClassifyAt(offset int) (Classification, bool)
}

// Func adapts a plain function to the Classifier interface.
type Func func(offset int) (Classification, bool)

// ClassifyAt implements Classifier.
func (f Func) ClassifyAt(offset int) (Classification, bool) {
	return f(offset)
}

// None is a classifier that never matches. Plain text documents use it.
var None Classifier = Func(func(int) (Classification, bool) {
	return Classification{}, false
})

// Table is a classifier backed by a pre-sorted, non-overlapping span
// list. It is the building block for providers that tokenize up front.
type Table struct {
	spans []Classification
}

// NewTable builds a table classifier. Spans must be sorted by Start and
// must not overlap.
func NewTable(spans []Classification) *Table {
	return &Table{spans: spans}
}

// ClassifyAt implements Classifier via binary search.
func (t *Table) ClassifyAt(offset int) (Classification, bool) {
	spans := t.spans
	lo, hi := 0, len(spans)
	for lo < hi {
		mid := (lo + hi) / 2
		if spans[mid].Start <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	// lo is the first span starting after offset; the candidate is the
	// one before it.
	if lo == 0 {
		return Classification{}, false
	}
	if c := spans[lo-1]; c.Contains(offset) {
		return c, true
	}
	return Classification{}, false
}

// Spans returns the underlying span list.
func (t *Table) Spans() []Classification {
	return t.spans
}
