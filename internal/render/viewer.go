package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/prism/internal/document"
	"github.com/dshills/prism/internal/highlight"
	"github.com/dshills/prism/internal/palette"
)

const viewerTabWidth = 4

// Viewer is a read-only full-screen pager that shows a document with
// its brackets colored. Scrolling follows the usual pager keys.
type Viewer struct {
	screen tcell.Screen
	doc    *document.Snapshot

	// mu guards spanAt and styles, which Update can replace while
	// the event loop is drawing.
	mu     sync.Mutex
	spanAt map[int]int // rune offset -> palette index
	styles []tcell.Style

	lines  []viewerLine
	plain  tcell.Style
	status tcell.Style

	top int
}

// viewerLine is one display line with its starting rune offset.
type viewerLine struct {
	start int
	runes []rune
}

// NewViewer creates a viewer for the document on the given screen.
// The screen must not be initialized yet; Run owns its lifecycle.
func NewViewer(screen tcell.Screen, doc *document.Snapshot, pal *palette.Palette, spans []highlight.Span) *Viewer {
	v := &Viewer{
		screen: screen,
		doc:    doc,
		plain:  tcell.StyleDefault,
		status: tcell.StyleDefault.Reverse(true),
	}
	v.spanAt, v.styles = buildLookup(pal, spans)
	v.lines = splitLines(doc)
	return v
}

// Update replaces the palette and spans, for callers that rebuild them
// after a configuration change. Post a tcell interrupt event to wake
// the event loop so the change is drawn.
func (v *Viewer) Update(pal *palette.Palette, spans []highlight.Span) {
	spanAt, styles := buildLookup(pal, spans)
	v.mu.Lock()
	v.spanAt = spanAt
	v.styles = styles
	v.mu.Unlock()
}

// buildLookup precomputes the offset index and per-slot styles.
func buildLookup(pal *palette.Palette, spans []highlight.Span) (map[int]int, []tcell.Style) {
	spanAt := make(map[int]int, len(spans))
	for _, sp := range spans {
		spanAt[sp.Start] = sp.ColorIndex
	}

	var styles []tcell.Style
	for _, c := range pal.Colors() {
		color := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		styles = append(styles, tcell.StyleDefault.Foreground(color).Bold(true))
	}
	return spanAt, styles
}

// splitLines breaks the document into display lines, keeping each
// line's starting rune offset so spans can be placed.
func splitLines(doc *document.Snapshot) []viewerLine {
	var lines []viewerLine
	current := viewerLine{start: 0}
	for off := 0; off < doc.Len(); off++ {
		ch, ok := doc.RuneAt(off)
		if !ok {
			break
		}
		if ch == '\n' {
			lines = append(lines, current)
			current = viewerLine{start: off + 1}
			continue
		}
		current.runes = append(current.runes, ch)
	}
	lines = append(lines, current)
	return lines
}

// Run takes over the screen until the user quits.
func (v *Viewer) Run() error {
	if err := v.screen.Init(); err != nil {
		return err
	}
	defer v.screen.Fini()

	for {
		v.draw()
		if quit := v.handle(v.screen.PollEvent()); quit {
			return nil
		}
	}
}

// handle processes one event. Returns true when the viewer should exit.
func (v *Viewer) handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()

	case *tcell.EventKey:
		_, height := v.screen.Size()
		page := height - 1
		if page < 1 {
			page = 1
		}

		switch {
		case e.Key() == tcell.KeyEscape, e.Key() == tcell.KeyCtrlC, e.Rune() == 'q':
			return true
		case e.Key() == tcell.KeyUp, e.Rune() == 'k':
			v.scroll(-1)
		case e.Key() == tcell.KeyDown, e.Rune() == 'j':
			v.scroll(1)
		case e.Key() == tcell.KeyPgUp, e.Key() == tcell.KeyCtrlB:
			v.scroll(-page)
		case e.Key() == tcell.KeyPgDn, e.Key() == tcell.KeyCtrlF, e.Rune() == ' ':
			v.scroll(page)
		case e.Key() == tcell.KeyHome, e.Rune() == 'g':
			v.top = 0
		case e.Key() == tcell.KeyEnd, e.Rune() == 'G':
			v.scroll(len(v.lines))
		}
	}
	return false
}

// scroll moves the viewport, clamped to the document.
func (v *Viewer) scroll(delta int) {
	_, height := v.screen.Size()
	view := height - 1
	if view < 1 {
		view = 1
	}

	max := len(v.lines) - view
	if max < 0 {
		max = 0
	}

	v.top += delta
	if v.top > max {
		v.top = max
	}
	if v.top < 0 {
		v.top = 0
	}
}

// draw paints the visible lines and the status bar.
func (v *Viewer) draw() {
	v.mu.Lock()
	spanAt, styles := v.spanAt, v.styles
	v.mu.Unlock()

	v.screen.Clear()
	width, height := v.screen.Size()
	view := height - 1

	for row := 0; row < view; row++ {
		idx := v.top + row
		if idx >= len(v.lines) {
			break
		}
		ln := v.lines[idx]

		x := 0
		for i, ch := range ln.runes {
			if x >= width {
				break
			}
			if ch == '\t' {
				x += viewerTabWidth - x%viewerTabWidth
				continue
			}
			style := v.plain
			if ci, ok := spanAt[ln.start+i]; ok && ci < len(styles) {
				style = styles[ci]
			}
			v.screen.SetContent(x, row, ch, nil, style)
			x++
		}
	}

	v.drawStatus(width, height)
	v.screen.Show()
}

// drawStatus paints the bottom status bar.
func (v *Viewer) drawStatus(width, height int) {
	if height < 1 {
		return
	}
	row := height - 1

	text := fmt.Sprintf(" %s  %d lines  top %d  q to quit", v.doc.Name(), len(v.lines), v.top+1)
	runes := []rune(text)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		v.screen.SetContent(x, row, ch, nil, v.status)
	}
}
