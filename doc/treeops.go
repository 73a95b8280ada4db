package doc

import (
	"iter"
	"strings"
)

// IsSubDocOf reports whether every concrete rendering reachable from sub
// (resolving its Unions one way or another) is also reachable from
// super. Both documents are resolved exhaustively via Deunioned, so this
// inherits Deunioned's exponential cost in the number of Unions: it is
// meant for modest documents, not as a hot-path check.
func IsSubDocOf(sub, super Doc) bool {
	superSet := renderSet(super)
	for d := range Deunioned(sub) {
		if !superSet[Render(d, maxBound)] {
			return false
		}
	}
	return true
}

// SetDiff yields every concrete rendering reachable from b that is not
// also reachable from a, as an iterator over Docs (each already a
// concrete, Union-free rendering of b). Like IsSubDocOf, this resolves
// both documents exhaustively and is meant for modest documents.
func SetDiff(a, b Doc) iter.Seq[Doc] {
	aSet := renderSet(a)
	return func(yield func(Doc) bool) {
		for d := range Deunioned(b) {
			if !aSet[Render(d, maxBound)] {
				if !yield(d) {
					return
				}
			}
		}
	}
}

func renderSet(d Doc) map[string]bool {
	set := map[string]bool{}
	for leaf := range Deunioned(d) {
		set[Render(leaf, maxBound)] = true
	}
	return set
}

// compareChunk orders two chunks. Chunks of different kinds are ordered
// with ChunkBreak greater than ChunkStr — the opposite of their ASCII
// byte values ('\n' is 10, well below most printable characters — this
// is a deliberate departure so that, e.g., comparing a document against
// one of its own Grouped variants ranks the broken form after the flat
// one, matching how a human reviewing a diff expects "more expanded"
// output to sort later.
func compareChunk(a, b Chunk) int {
	if a.Kind != b.Kind {
		if a.Kind == ChunkBreak {
			return 1
		}
		return -1
	}
	if a.Kind == ChunkStr {
		return strings.Compare(a.Text, b.Text)
	}
	return cmpInt(a.Indent, b.Indent)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareChunkSeq(a, b []Chunk) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareChunk(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

// canonicalChunks linearizes t by, at every TreeBranch, keeping whichever
// alternative is lexicographically smaller (by recursively applying the
// same rule to each side). The result is t's minimum possible chunk
// sequence under compareChunk/compareChunkSeq ordering. Two trees that
// denote the same set of realizable chunk sequences necessarily share
// the same minimum, which is what lets CompareTree's 0 result agree with
// mutual IsSubDocOf.
func canonicalChunks(t Tree) []Chunk {
	switch t.Kind() {
	case TreeEnd:
		return nil
	case TreeChunk:
		return append([]Chunk{t.Chunk()}, canonicalChunks(t.Tail())...)
	case TreeBranch:
		l := canonicalChunks(t.Left())
		r := canonicalChunks(t.Right())
		if compareChunkSeq(l, r) <= 0 {
			return l
		}
		return r
	}
	return nil
}

// CompareTree totally orders two DocTrees by comparing their canonical
// minimum chunk sequences.
func CompareTree(x, y Tree) int {
	return compareChunkSeq(canonicalChunks(x), canonicalChunks(y))
}

// Compare totally orders two Docs by resolving each to its DocTree and
// delegating to CompareTree. Compare(a, b) == 0 whenever a and b are
// mutually IsSubDocOf one another.
func Compare(a, b Doc) int {
	return CompareTree(ToDocTree(a), ToDocTree(b))
}

// Less reports whether a sorts strictly before b under Compare, making
// Doc usable as a sort.Interface/slices.SortFunc key.
func Less(a, b Doc) bool {
	return Compare(a, b) < 0
}
