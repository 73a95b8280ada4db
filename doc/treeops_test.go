package doc

import "testing"

func TestIsSubDocOfReflexive(t *testing.T) {
	t.Parallel()

	d := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()
	if !IsSubDocOf(d, d) {
		t.Fatal("a doc should be a sub-doc of itself")
	}
}

func TestIsSubDocOfFlatIsSubDocOfGrouped(t *testing.T) {
	t.Parallel()

	flat := Text("a").Concat(Space()).Concat(Text("b"))
	grouped := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()

	if !IsSubDocOf(flat, grouped) {
		t.Fatal("the flat rendering should be reachable from the grouped doc")
	}
	if IsSubDocOf(grouped, flat) {
		t.Fatal("the grouped doc should not be a sub-doc of its flat rendering alone")
	}
}

func TestIsSubDocOfUnrelatedDocs(t *testing.T) {
	t.Parallel()

	a := Text("x")
	b := Text("y")
	if IsSubDocOf(a, b) {
		t.Fatal("unrelated docs should not be sub-docs of each other")
	}
}

func TestSetDiffYieldsOnlyTheExtraAlternative(t *testing.T) {
	t.Parallel()

	flat := Text("a").Concat(Space()).Concat(Text("b"))
	grouped := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()

	var diffs []string
	for d := range SetDiff(flat, grouped) {
		diffs = append(diffs, Render(d, 1<<30))
	}
	if len(diffs) != 1 || diffs[0] != "a\nb" {
		t.Fatalf("SetDiff(flat, grouped) = %v, want [\"a\\nb\"]", diffs)
	}
}

func TestSetDiffOfIdenticalDocsIsEmpty(t *testing.T) {
	t.Parallel()

	d := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()
	count := 0
	for range SetDiff(d, d) {
		count++
	}
	if count != 0 {
		t.Fatalf("SetDiff(d, d) should yield nothing, got %d", count)
	}
}

func TestCompareIsReflexiveAndTotal(t *testing.T) {
	t.Parallel()

	a := Text("abc")
	b := Text("abd")
	c := Text("abc")

	if Compare(a, a) != 0 {
		t.Fatal("Compare(a, a) should be 0")
	}
	if Compare(a, c) != 0 {
		t.Fatal("equal-content docs should compare equal")
	}
	if !(Compare(a, b) < 0) {
		t.Fatalf("Compare(abc, abd) should be negative, got %d", Compare(a, b))
	}
	if !(Compare(b, a) > 0) {
		t.Fatalf("Compare(abd, abc) should be positive, got %d", Compare(b, a))
	}
}

func TestCompareBreakRanksAboveText(t *testing.T) {
	t.Parallel()

	withBreak := Text("a").Concat(Line())
	withText := Text("a").Concat(Text("z"))

	if !(Compare(withBreak, withText) > 0) {
		t.Fatalf("a Break chunk should rank above a Str chunk, got Compare = %d", Compare(withBreak, withText))
	}
}

func TestCompareAgreesWithMutualSubDoc(t *testing.T) {
	t.Parallel()

	a := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()
	b := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()

	if !IsSubDocOf(a, b) || !IsSubDocOf(b, a) {
		t.Fatal("structurally equivalent docs should be mutual sub-docs")
	}
	if Compare(a, b) != 0 {
		t.Fatalf("mutual sub-docs should compare equal, got %d", Compare(a, b))
	}
}

func TestLessMatchesCompare(t *testing.T) {
	t.Parallel()

	a := Text("a")
	b := Text("b")
	if !Less(a, b) || Less(b, a) {
		t.Fatal("Less should match Compare's ordering")
	}
}
