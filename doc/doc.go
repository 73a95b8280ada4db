// Package doc implements a Wadler/Leijen-style pretty-printing document
// algebra: a small set of document constructors, a flattener, and a
// best-layout rendering engine driven by a one-line-lookahead fits
// predicate.
//
// Doc values are immutable once constructed and safe for concurrent use,
// including sharing the same subtree across multiple larger documents.
package doc

import (
	"strings"
	"sync"
)

type docKind uint8

const (
	kindEmpty docKind = iota
	kindLine
	kindText
	kindNest
	kindConcat
	kindUnion
)

// Doc is an immutable pretty-printing document. The zero Doc is Empty.
type Doc struct {
	kind docKind

	text string // kindText

	indent int  // kindNest
	child  *Doc // kindNest

	left  *Doc // kindConcat, kindUnion (flat alternative)
	right *Doc // kindConcat (eager)

	union *unionThunk // kindUnion (lazily computed break alternative)
}

// unionThunk memoizes the right (break) branch of a Union node so that
// concurrent first observation only computes it once.
type unionThunk struct {
	once sync.Once
	fn   func() Doc
	doc  Doc
}

func (u *unionThunk) force() Doc {
	u.once.Do(func() {
		u.doc = u.fn()
	})
	return u.doc
}

// Empty is the identity document: it renders as nothing and never
// contributes width or line breaks.
func Empty() Doc { return Doc{kind: kindEmpty} }

// Text returns a document for s. A newline-free s becomes a single
// atomic text fragment. Otherwise s is split at each "\n" into literal
// fragments joined by hard Line breaks, built right to left so the
// result stays right-associated and contains no empty Text node.
func Text(s string) Doc {
	if s == "" {
		return Empty()
	}
	if !strings.Contains(s, "\n") {
		return rawText(s)
	}
	parts := strings.Split(s, "\n")
	result := rawTextOrEmpty(parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		result = concat2(rawTextOrEmpty(parts[i]), concat2(Line(), result))
	}
	return result
}

func rawText(s string) Doc { return Doc{kind: kindText, text: s} }

func rawTextOrEmpty(s string) Doc {
	if s == "" {
		return Empty()
	}
	return rawText(s)
}

// Spaces returns a Text of n literal space characters. n <= 0 yields Empty.
func Spaces(n int) Doc {
	if n <= 0 {
		return Empty()
	}
	return Text(spacesOfLen(n))
}

// Space is a single literal space character, as an unbreakable Text.
func Space() Doc { return Text(" ") }

// Comma is a literal "," Text, a convenience used throughout combinators.
func Comma() Doc { return Text(",") }

// Line is a hard line break: it always renders as a newline followed by
// the current indentation, even inside a flattened group.
func Line() Doc { return Doc{kind: kindLine} }

// SpaceOrLine is a Union whose flat alternative is a single space and
// whose break alternative is Line. This is the building block groups are
// made of: flatten(SpaceOrLine()) == Space().
func SpaceOrLine() Doc {
	flat := Space()
	return union(flat, Line)
}

func union(flat Doc, makeBreak func() Doc) Doc {
	return Doc{
		kind: kindUnion,
		left: &flat,
		union: &unionThunk{
			fn: makeBreak,
		},
	}
}

// concat2 appends b after a, collapsing Empty operands. This is the "+"
// operator of the algebra, and it always normalizes to a right-associated
// tree: Concat(Concat(x, y), z) is rewritten to Concat(x, Concat(y, z))
// at construction time, by rotating whenever a is itself a Concat. This
// keeps every linear traversal (flattenConcat, render's Next, buildTree,
// IsEmpty) walking a predictable right-leaning spine.
//
// The rotation costs O(depth of a), not O(depth of b), so callers that
// need to build a long chain should fold from the right — concat2(item,
// accumulator), never concat2(accumulator, item) — keeping a shallow on
// every step. FoldDocs, Intercalate, Repeat and Text's newline-splitting
// all build this way; see their comments.
func concat2(a, b Doc) Doc {
	if a.kind == kindEmpty {
		return b
	}
	if b.kind == kindEmpty {
		return a
	}
	if a.kind == kindConcat {
		return concat2(*a.left, concat2(*a.right, b))
	}
	l, r := a, b
	return Doc{kind: kindConcat, left: &l, right: &r}
}

// Concat returns d followed by other, i.e. the algebra's "+" operator.
func (d Doc) Concat(other Doc) Doc { return concat2(d, other) }

// NewLine returns d followed by a hard Line then other, i.e. the
// algebra's "/" operator: d / other.
func (d Doc) NewLine(other Doc) Doc {
	return concat2(concat2(d, Line()), other)
}

// JoinSpace returns d followed by a single space then other.
func (d Doc) JoinSpace(other Doc) Doc {
	return concat2(concat2(d, Space()), other)
}

// JoinSpaceOrLine returns d followed by a SpaceOrLine then other.
func (d Doc) JoinSpaceOrLine(other Doc) Doc {
	return concat2(concat2(d, SpaceOrLine()), other)
}

// Nest increases the indentation level applied to any Line reached
// underneath d by n columns.
func (d Doc) Nest(n int) Doc {
	if d.kind == kindEmpty || n == 0 {
		return d
	}
	c := d
	return Doc{kind: kindNest, indent: n, child: &c}
}

// Grouped returns a Union whose flat alternative is Flatten(d) and whose
// break alternative is d itself, establishing the algebra's strong
// invariant: flat == flatten(break).
//
// If d is already fully flat (contains no Line/Union/Nest), Grouped
// returns d unchanged, since there is nothing to choose between.
func (d Doc) Grouped() Doc {
	flat, changed := FlattenOption(d)
	if !changed {
		return d
	}
	original := d
	return union(flat, func() Doc { return original })
}

// Repeat concatenates n copies of d. n <= 0 yields Empty. Folds from the
// right (concat2(d, result)) so each step rotates only d's own fixed
// depth, not the accumulated result's — linear overall instead of
// quadratic in n.
func (d Doc) Repeat(n int) Doc {
	if n <= 0 || d.kind == kindEmpty {
		return Empty()
	}
	result := d
	for i := 1; i < n; i++ {
		result = concat2(d, result)
	}
	return result
}

// IsEmpty reports whether d can never produce any output: it is built
// entirely out of Empty and Concat/Nest/Union wrapping Empty. A Union
// inspects only its left (flat) branch, never the break branch, since
// flattening preserves emptiness and forcing the break branch would
// violate the laziness contract. A Line is never considered empty.
func (d Doc) IsEmpty() bool {
	stack := []Doc{d}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		switch cur.kind {
		case kindEmpty:
			continue
		case kindText:
			return false
		case kindLine:
			return false
		case kindNest:
			stack = append(stack, *cur.child)
		case kindConcat:
			stack = append(stack, *cur.left, *cur.right)
		case kindUnion:
			stack = append(stack, *cur.left)
		}
	}
	return true
}

func spacesOfLen(n int) string {
	return strings.Repeat(" ", n)
}
