package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromString(t *testing.T) {
	s := FromString("test.go", "text/x-go", "func main() {}")

	if s.Name() != "test.go" {
		t.Errorf("expected name test.go, got %s", s.Name())
	}
	if s.MimeType() != "text/x-go" {
		t.Errorf("expected mime text/x-go, got %s", s.MimeType())
	}
	if s.Len() != 14 {
		t.Errorf("expected length 14, got %d", s.Len())
	}
	if s.ID() == "" {
		t.Error("expected non-empty ID")
	}
	if s.IsEmpty() {
		t.Error("snapshot should not be empty")
	}
}

func TestSnapshotIDsUnique(t *testing.T) {
	a := FromString("a", "text/plain", "x")
	b := FromString("a", "text/plain", "x")
	if a.ID() == b.ID() {
		t.Error("snapshots should have unique IDs")
	}
}

func TestRuneOffsets(t *testing.T) {
	// Multi-byte runes count as one position each.
	s := FromString("t", "text/plain", "aé世b")

	if s.Len() != 4 {
		t.Fatalf("expected rune length 4, got %d", s.Len())
	}

	tests := []struct {
		offset int
		want   rune
		ok     bool
	}{
		{0, 'a', true},
		{1, 'é', true},
		{2, '世', true},
		{3, 'b', true},
		{4, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		r, ok := s.RuneAt(tt.offset)
		if ok != tt.ok {
			t.Errorf("RuneAt(%d) ok = %v, want %v", tt.offset, ok, tt.ok)
			continue
		}
		if ok && r != tt.want {
			t.Errorf("RuneAt(%d) = %q, want %q", tt.offset, r, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	s := FromString("t", "text/plain", "hello世界")

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 5, "hello"},
		{5, 7, "世界"},
		{0, 0, ""},
		{3, 2, ""},   // inverted
		{-2, 2, "he"}, // clamped start
		{5, 99, "世界"}, // clamped end
	}

	for _, tt := range tests {
		if got := s.Slice(tt.start, tt.end); got != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	const text = "line one\nline two"
	s := FromString("t", "text/plain", text)
	if s.Text() != text {
		t.Errorf("Text() = %q, want %q", s.Text(), text)
	}
}

func TestOffsetToPoint(t *testing.T) {
	s := FromString("t", "text/plain", "ab\ncd\n\ne")

	tests := []struct {
		offset int
		want   Point
	}{
		{0, Point{0, 0}},
		{1, Point{0, 1}},
		{2, Point{0, 2}}, // at the newline
		{3, Point{1, 0}},
		{5, Point{1, 2}},
		{6, Point{2, 0}},
		{7, Point{3, 0}},
		{8, Point{3, 1}},
		{99, Point{3, 1}}, // clamped past end
		{-1, Point{0, 0}},
	}

	for _, tt := range tests {
		if got := s.OffsetToPoint(tt.offset); got != tt.want {
			t.Errorf("OffsetToPoint(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	if err := os.WriteFile(path, []byte("package x\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	s, err := FromFile(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MimeType() != "text/x-go" {
		t.Errorf("expected detected mime text/x-go, got %s", s.MimeType())
	}
	if s.Text() != "package x\n" {
		t.Errorf("unexpected content: %q", s.Text())
	}

	s, err = FromFile(path, "text/custom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MimeType() != "text/custom" {
		t.Errorf("explicit mime should win, got %s", s.MimeType())
	}

	if _, err := FromFile(filepath.Join(dir, "missing.go"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "text/x-go"},
		{"lib.RS", "text/x-rust"},
		{"app.tsx", "text/x-typescript"},
		{"script.py", "text/x-python"},
		{"config.yaml", "text/x-yaml"},
		{"notes.txt", "text/plain"},
		{"README", "text/plain"},
		{"page.html", "text/html"},
		{"data.bin.unknownext", "text/plain"},
	}

	for _, tt := range tests {
		if got := DetectMimeType(tt.path); got != tt.want {
			t.Errorf("DetectMimeType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
