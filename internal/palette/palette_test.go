package palette

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false}, // Short form
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
		{"", 0, 0, 0, true},
		{"#FFFF", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ParseHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) expected error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ParseHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 255, G: 128, B: 64}
	if got := c.Hex(); got != "#FF8040" {
		t.Errorf("expected #FF8040, got %s", got)
	}
	if got := c.String(); got != "#FF8040" {
		t.Errorf("String() = %s, want #FF8040", got)
	}
}

func TestNewFiltersDisabled(t *testing.T) {
	entries := []Entry{
		{Color: Color{R: 1}, Enabled: true},
		{Color: Color{R: 2}, Enabled: false},
		{Color: Color{R: 3}, Enabled: true},
		{Color: Color{R: 4}, Enabled: false},
	}

	p := New(entries)
	if p.Len() != 2 {
		t.Fatalf("expected 2 effective colors, got %d", p.Len())
	}
	if p.At(0).R != 1 {
		t.Errorf("expected first color R=1, got %d", p.At(0).R)
	}
	if p.At(1).R != 3 {
		t.Errorf("expected second color R=3, got %d", p.At(1).R)
	}
}

func TestNewAllDisabled(t *testing.T) {
	entries := []Entry{
		{Color: Color{R: 1}, Enabled: false},
		{Color: Color{R: 2}, Enabled: false},
	}

	p := New(entries)
	if !p.IsEmpty() {
		t.Error("expected empty palette")
	}
	if p.Len() != 0 {
		t.Errorf("expected length 0, got %d", p.Len())
	}
}

func TestFromHexes(t *testing.T) {
	p, err := FromHexes([]string{"#FF0000", "#00FF00", "#0000FF"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("expected 3 colors, got %d", p.Len())
	}
	if p.At(1).G != 255 {
		t.Errorf("expected second color G=255, got %d", p.At(1).G)
	}

	if _, err := FromHexes([]string{"#FF0000", "bogus"}); err == nil {
		t.Error("expected error for invalid hex entry")
	}
}

func TestColorFor(t *testing.T) {
	p := FromColors([]Color{{R: 10}, {R: 20}, {R: 30}})

	tests := []struct {
		index int
		wantR uint8
	}{
		{0, 10},
		{1, 20},
		{2, 30},
		{3, 10},  // wraps
		{7, 20},  // wraps
		{-1, 10}, // clamps to first
	}

	for _, tt := range tests {
		if got := p.ColorFor(tt.index); got.R != tt.wantR {
			t.Errorf("ColorFor(%d) R = %d, want %d", tt.index, got.R, tt.wantR)
		}
	}
}

func TestColorForEmpty(t *testing.T) {
	p := New(nil)
	if got := p.ColorFor(0); got != (Color{}) {
		t.Errorf("expected zero color from empty palette, got %v", got)
	}
}

func TestNilPaletteLen(t *testing.T) {
	var p *Palette
	if p.Len() != 0 {
		t.Error("nil palette should have length 0")
	}
	if !p.IsEmpty() {
		t.Error("nil palette should be empty")
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.Len() != MaxColors {
		t.Fatalf("expected %d default colors, got %d", MaxColors, p.Len())
	}

	seen := make(map[Color]bool)
	for i := 0; i < p.Len(); i++ {
		c := p.At(i)
		if seen[c] {
			t.Errorf("duplicate default color %s at index %d", c.Hex(), i)
		}
		seen[c] = true
	}
}

func TestDefaultEntriesAllEnabled(t *testing.T) {
	for i, e := range DefaultEntries() {
		if !e.Enabled {
			t.Errorf("default entry %d should be enabled", i)
		}
	}
}

func TestColorsReturnsCopy(t *testing.T) {
	p := FromColors([]Color{{R: 10}, {R: 20}})
	colors := p.Colors()
	colors[0].R = 99

	if p.At(0).R != 10 {
		t.Error("mutating returned slice should not affect palette")
	}
}
