package doc

import "testing"

func TestFoldDocsEmpty(t *testing.T) {
	t.Parallel()

	if got := Render(FoldDocs(nil, func(a, b Doc) Doc { return a.Concat(b) }), 80); got != "" {
		t.Fatalf("FoldDocs(nil) = %q, want empty", got)
	}
}

func TestIntercalate(t *testing.T) {
	t.Parallel()

	ds := []Doc{Text("a"), Text("b"), Text("c")}
	got := Render(Intercalate(Text(", "), ds), 80)
	if got != "a, b, c" {
		t.Fatalf("Intercalate = %q, want %q", got, "a, b, c")
	}
}

func TestSpread(t *testing.T) {
	t.Parallel()

	ds := []Doc{Text("a"), Text("b")}
	if got := Render(Spread(ds), 80); got != "a b" {
		t.Fatalf("Spread = %q, want %q", got, "a b")
	}
}

func TestStack(t *testing.T) {
	t.Parallel()

	ds := []Doc{Text("a"), Text("b"), Text("c")}
	if got := Render(Stack(ds), 80); got != "a\nb\nc" {
		t.Fatalf("Stack = %q, want %q", got, "a\nb\nc")
	}
}

func TestBracketCollapsesWhenItFits(t *testing.T) {
	t.Parallel()

	body := Intercalate(Text(",").Concat(SpaceOrLine()), []Doc{Text("a"), Text("b"), Text("c")})
	d := Bracket(Text("["), Text("]"), body)

	if got := Render(d, 80); got != "[ a, b, c ]" {
		t.Fatalf("Bracket wide = %q, want %q", got, "[ a, b, c ]")
	}
}

func TestBracketBreaksAndIndentsWhenNarrow(t *testing.T) {
	t.Parallel()

	body := Intercalate(Text(",").Concat(SpaceOrLine()), []Doc{Text("alpha"), Text("beta"), Text("gamma")})
	d := Bracket(Text("["), Text("]"), body)

	want := "[\n  alpha,\n  beta,\n  gamma\n]"
	if got := Render(d, 3); got != want {
		t.Fatalf("Bracket narrow = %q, want %q", got, want)
	}
}

func TestBracketIndentCustomWidth(t *testing.T) {
	t.Parallel()

	body := Text("x")
	d := BracketIndent(Text("{"), Text("}"), 4, body)
	want := "{\n    x\n}"
	if got := Render(d, 0); got != want {
		t.Fatalf("BracketIndent = %q, want %q", got, want)
	}
}
