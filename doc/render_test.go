package doc

import (
	"strings"
	"testing"
)

func TestRenderSoftLineWrapsByWidth(t *testing.T) {
	t.Parallel()

	d := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()

	if got := Render(d, 10); got != "a b" {
		t.Fatalf("Render wide = %q, want %q", got, "a b")
	}
	if got := Render(d, 1); got != "a\nb" {
		t.Fatalf("Render narrow = %q, want %q", got, "a\nb")
	}
}

func TestRenderIndentAndDeterminism(t *testing.T) {
	t.Parallel()

	inner := Text("beta").Concat(SpaceOrLine()).Concat(Text("gamma")).Grouped()
	body := Line().Concat(Text("alpha")).Concat(Line()).Concat(inner)
	d := Text("{").Concat(body.Nest(2)).Concat(Line()).Concat(Text("}")).Grouped()

	got1 := Render(d, 6)
	got2 := Render(d, 6)
	if got1 != got2 {
		t.Fatalf("render not deterministic: %q vs %q", got1, got2)
	}

	want := "{\n  alpha\n  beta gamma\n}"
	if got1 != want {
		t.Fatalf("render = %q, want %q", got1, want)
	}
}

func TestRenderNegativeWidthClamped(t *testing.T) {
	t.Parallel()

	d := Text("a").Concat(SpaceOrLine()).Concat(Text("b")).Grouped()
	got := Render(d, -5)
	if got != "a\nb" {
		t.Fatalf("Render(width=-5) = %q, want %q", got, "a\nb")
	}
}

func TestRenderOverlongTextDoesNotPanic(t *testing.T) {
	t.Parallel()

	d := Text(strings.Repeat("x", 50)).Concat(SpaceOrLine()).Concat(Text("y")).Grouped()
	got := Render(d, 10)
	want := strings.Repeat("x", 50) + "\ny"
	if got != want {
		t.Fatalf("Render overlong = %q, want %q", got, want)
	}
}

func TestWriteToMatchesRender(t *testing.T) {
	t.Parallel()

	d := Stack([]Doc{Text("a"), Text("b"), Text("c")})
	var sb strings.Builder
	if err := WriteTo(&sb, d, 80); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if sb.String() != Render(d, 80) {
		t.Fatalf("WriteTo = %q, want %q", sb.String(), Render(d, 80))
	}
}

func TestRenderStreamYieldsSameTextAsRender(t *testing.T) {
	t.Parallel()

	d := Stack([]Doc{Text("a"), Text("b")}).Nest(2)
	var sb strings.Builder
	for frag := range RenderStream(d, 80) {
		sb.WriteString(frag)
	}
	if sb.String() != Render(d, 80) {
		t.Fatalf("RenderStream = %q, want %q", sb.String(), Render(d, 80))
	}
}

func TestRenderStreamEarlyStop(t *testing.T) {
	t.Parallel()

	d := Stack([]Doc{Text("a"), Text("b"), Text("c")})
	count := 0
	for range RenderStream(d, 80) {
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Fatalf("expected iteration to stop after 1, got %d", count)
	}
}
