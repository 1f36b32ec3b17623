package highlight

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/document"
)

// referenceSpans recomputes expected spans directly from the balance
// rules, independent of the generator's incremental state machine.
// Offsets flagged in skipped are treated as suppressed.
func referenceSpans(text string, cfg *config.Snapshot, skipped map[int]bool) []Span {
	counters := map[Family]int{}
	var out []Span

	for i, r := range []rune(text) {
		if skipped[i] {
			continue
		}
		k := KindOf(r)
		if k == KindNone {
			continue
		}

		f := k.Family()
		switch f {
		case FamilyBrace:
			if !cfg.Braces() {
				continue
			}
		case FamilyBracket:
			if !cfg.Brackets() {
				continue
			}
		case FamilyParen:
			if !cfg.Parentheses() {
				continue
			}
		}

		var depth int
		if k.IsOpen() {
			depth = counters[f]
			counters[f]++
		} else {
			counters[f]--
			depth = counters[f]
		}

		colorIndex := 0
		if depth >= 0 {
			colorIndex = depth % cfg.Palette().Len()
		}

		out = append(out, Span{Start: i, End: i + 1, Kind: k, Depth: depth, ColorIndex: colorIndex})
	}
	return out
}

func equalSpans(a, b []Span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func optionsWithPaletteSize(n int) config.Options {
	opts := config.Default()
	for i := range opts.Colors {
		opts.Colors[i].Enabled = i < n
	}
	return opts
}

func TestSequenceMatchesReference(t *testing.T) {
	alphabet := []rune("(){}[]ab \n世")

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom(alphabet), 0, 200, -1).Draw(rt, "text")

		opts := optionsWithPaletteSize(rapid.IntRange(1, 9).Draw(rt, "paletteSize"))
		opts.Braces = rapid.Bool().Draw(rt, "braces")
		opts.Brackets = rapid.Bool().Draw(rt, "brackets")
		opts.Parentheses = rapid.Bool().Draw(rt, "parens")

		cfg, err := config.NewSnapshot(opts)
		if err != nil {
			rt.Fatalf("snapshot: %v", err)
		}

		doc := document.FromString("prop", "text/x-test", text)
		got := Collect(NewSequence(doc, cfg, nil, 0, doc.Len()))
		want := referenceSpans(text, cfg, nil)

		if !equalSpans(got, want) {
			rt.Fatalf("got %+v\nwant %+v", got, want)
		}
	})
}

func TestSequenceMatchesReferenceWithSkips(t *testing.T) {
	alphabet := []rune("(){}[]x\"'")

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom(alphabet), 1, 120, -1).Draw(rt, "text")
		runes := []rune(text)

		// Carve non-overlapping skip regions out of the document.
		var regions []classify.Classification
		skipped := make(map[int]bool)
		pos := 0
		for pos < len(runes) {
			gap := rapid.IntRange(0, 8).Draw(rt, "gap")
			start := pos + gap
			if start >= len(runes) {
				break
			}
			length := rapid.IntRange(1, 6).Draw(rt, "len")
			end := start + length
			if end > len(runes) {
				end = len(runes)
			}
			regions = append(regions, classify.Classification{
				Category: classify.CategoryString,
				Start:    start,
				End:      end,
			})
			for i := start; i < end; i++ {
				skipped[i] = true
			}
			pos = end
		}

		cfg := config.MustSnapshot(config.Default())
		doc := document.FromString("prop", "text/x-test", text)
		table := classify.NewTable(regions)

		got := Collect(NewSequence(doc, cfg, table, 0, doc.Len()))
		want := referenceSpans(text, cfg, skipped)

		if !equalSpans(got, want) {
			rt.Fatalf("got %+v\nwant %+v", got, want)
		}

		for _, s := range got {
			if skipped[s.Start] {
				rt.Fatalf("span at %d falls inside a skipped region", s.Start)
			}
		}
	})
}

var balancedPairs = [][2]rune{{'(', ')'}, {'[', ']'}, {'{', '}'}}

// drawBalanced produces a string whose brackets are all properly
// matched, with optional plain filler between groups.
func drawBalanced(rt *rapid.T, depth int) string {
	if depth > 4 {
		return ""
	}

	var b strings.Builder
	n := rapid.IntRange(0, 3).Draw(rt, "groups")
	for i := 0; i < n; i++ {
		pair := rapid.SampledFrom(balancedPairs).Draw(rt, "pair")
		b.WriteRune(pair[0])
		b.WriteString(drawBalanced(rt, depth+1))
		b.WriteRune(pair[1])
		b.WriteString(rapid.StringOfN(rapid.RuneFrom([]rune("ax \n")), 0, 3, -1).Draw(rt, "filler"))
	}
	return b.String()
}

func TestBalancedTextInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := drawBalanced(rt, 0)

		cfg := config.MustSnapshot(config.Default())
		doc := document.FromString("prop", "text/x-test", text)
		spans := Collect(NewSequence(doc, cfg, nil, 0, doc.Len()))

		stacks := map[Family][]int{}
		for _, s := range spans {
			if s.Depth < 0 {
				rt.Fatalf("balanced text produced negative depth: %+v", s)
			}
			if s.ColorIndex != s.Depth%cfg.Palette().Len() {
				rt.Fatalf("color index mismatch: %+v", s)
			}

			f := s.Kind.Family()
			if s.Kind.IsOpen() {
				stacks[f] = append(stacks[f], s.Depth)
				continue
			}
			stack := stacks[f]
			if len(stack) == 0 {
				rt.Fatalf("close without open in balanced text: %+v", s)
			}
			openDepth := stack[len(stack)-1]
			stacks[f] = stack[:len(stack)-1]
			if s.Depth != openDepth {
				rt.Fatalf("close depth %d does not match open depth %d", s.Depth, openDepth)
			}
		}

		for f, stack := range stacks {
			if len(stack) != 0 {
				rt.Fatalf("family %v left %d unmatched opens", f, len(stack))
			}
		}
	})
}
