package doc

import "testing"

func TestMaxWidthFlatText(t *testing.T) {
	t.Parallel()

	if got := MaxWidth(Text("hello")); got != 5 {
		t.Fatalf("MaxWidth(hello) = %d, want 5", got)
	}
}

func TestMaxWidthStopsAtLine(t *testing.T) {
	t.Parallel()

	d := Text("abc").Concat(Line()).Concat(Text("de"))
	if got := MaxWidth(d); got != 3 {
		t.Fatalf("MaxWidth = %d, want 3", got)
	}
}

func TestMaxWidthMaximizesOverUnion(t *testing.T) {
	t.Parallel()

	d := Text("ab").Concat(SpaceOrLine()).Concat(Text("cd")).Grouped()
	// Flat alternative's first line is "ab cd" (5 cols); broken
	// alternative stops at its inner SpaceOrLine Union, whose own flat
	// space makes it "ab " (3 cols). MaxWidth takes the wider of the two.
	if got := MaxWidth(d); got != 5 {
		t.Fatalf("MaxWidth = %d, want 5", got)
	}
}

func TestMaxWidthEmpty(t *testing.T) {
	t.Parallel()

	if got := MaxWidth(Empty()); got != 0 {
		t.Fatalf("MaxWidth(Empty) = %d, want 0", got)
	}
}
