package classify

import (
	"testing"
)

func TestClassificationContains(t *testing.T) {
	c := Classification{Category: CategoryString, Start: 5, End: 10}

	tests := []struct {
		offset int
		want   bool
	}{
		{4, false},
		{5, true},
		{9, true},
		{10, false}, // End is exclusive
		{11, false},
	}

	for _, tt := range tests {
		if got := c.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}

	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}
}

func TestTableClassifyAt(t *testing.T) {
	table := NewTable([]Classification{
		{Category: CategoryComment, Start: 0, End: 4},
		{Category: CategoryString, Start: 10, End: 15},
		{Category: CategoryCharacter, Start: 20, End: 23},
	})

	tests := []struct {
		offset   int
		category string
		ok       bool
	}{
		{0, CategoryComment, true},
		{3, CategoryComment, true},
		{4, "", false}, // gap after first span
		{9, "", false},
		{10, CategoryString, true},
		{14, CategoryString, true},
		{15, "", false},
		{20, CategoryCharacter, true},
		{22, CategoryCharacter, true},
		{23, "", false},
		{100, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		c, ok := table.ClassifyAt(tt.offset)
		if ok != tt.ok {
			t.Errorf("ClassifyAt(%d) ok = %v, want %v", tt.offset, ok, tt.ok)
			continue
		}
		if ok && c.Category != tt.category {
			t.Errorf("ClassifyAt(%d) category = %s, want %s", tt.offset, c.Category, tt.category)
		}
	}
}

func TestTableEmpty(t *testing.T) {
	table := NewTable(nil)
	if _, ok := table.ClassifyAt(0); ok {
		t.Error("empty table should not classify anything")
	}
}

func TestFuncClassifier(t *testing.T) {
	f := Func(func(offset int) (Classification, bool) {
		if offset == 7 {
			return Classification{Category: CategoryString, Start: 7, End: 8}, true
		}
		return Classification{}, false
	})

	if _, ok := f.ClassifyAt(3); ok {
		t.Error("expected no classification at 3")
	}
	c, ok := f.ClassifyAt(7)
	if !ok || c.Category != CategoryString {
		t.Errorf("expected string classification at 7, got %v %v", c, ok)
	}
}

func TestNone(t *testing.T) {
	for _, offset := range []int{0, 1, 100} {
		if _, ok := None.ClassifyAt(offset); ok {
			t.Errorf("None classified offset %d", offset)
		}
	}
}
