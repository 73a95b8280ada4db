package doc

import "iter"

// TreeKind distinguishes the three shapes a DocTree node can take.
type TreeKind uint8

const (
	// TreeEnd marks the end of a chunk stream.
	TreeEnd TreeKind = iota
	// TreeChunk carries one Chunk and a lazy tail.
	TreeChunk
	// TreeBranch marks an unresolved Union choice within the probed
	// width bounds: both alternatives are still live.
	TreeBranch
)

// Tree is a lazy, width-bounded decision tree over a Doc's possible
// rendered outputs. Unlike a Doc's Union thunk, a Tree's lazy
// continuations are NOT memoized: calling Tail, Left, or Right more than
// once is expected to recompute, not panic or double-apply effects. This
// lets tree consumers (CompareTree, docFromTree) walk the same Tree from
// multiple vantage points cheaply, at the cost of potential
// recomputation.
type Tree struct {
	kind  TreeKind
	chunk Chunk
	tail  func() Tree // TreeChunk
	left  func() Tree // TreeBranch
	right func() Tree // TreeBranch
}

// Kind reports which of TreeEnd, TreeChunk, TreeBranch t is.
func (t Tree) Kind() TreeKind { return t.kind }

// Chunk returns the chunk carried by a TreeChunk node. Calling it on any
// other kind returns the zero Chunk.
func (t Tree) Chunk() Chunk { return t.chunk }

// Tail returns the continuation of a TreeChunk node.
func (t Tree) Tail() Tree {
	if t.tail == nil {
		return Tree{kind: TreeEnd}
	}
	return t.tail()
}

// Left returns the first (flat) alternative of a TreeBranch, the one taken
// at the wider widths.
func (t Tree) Left() Tree {
	if t.left == nil {
		return Tree{kind: TreeEnd}
	}
	return t.left()
}

// Right returns the second (break) alternative of a TreeBranch, the
// fallback at the narrower widths.
func (t Tree) Right() Tree {
	if t.right == nil {
		return Tree{kind: TreeEnd}
	}
	return t.right()
}

func treeEnd() Tree { return Tree{kind: TreeEnd} }

func treeChunkNode(c Chunk, tail func() Tree) Tree {
	return Tree{kind: TreeChunk, chunk: c, tail: tail}
}

func treeBranchNode(left, right func() Tree) Tree {
	return Tree{kind: TreeBranch, left: left, right: right}
}

// ToDocTree resolves every Union in d against the full width range
// [0, +inf) into a lazy DocTree: a Union whose fits-decision could differ
// somewhere in that range becomes a TreeBranch carrying both
// alternatives; one whose decision is already settled collapses into
// whichever side the probe determined.
func ToDocTree(d Doc) Tree {
	return buildTree([]frame{{indent: 0, doc: d}}, 0, maxBound, 0)
}

// maxBound stands in for +inf: no real document needs more columns than
// this to settle every fits decision.
const maxBound = 1 << 30

// buildTree walks stack (a cloned render work stack) and produces the
// portion of the DocTree reachable from it, given that the current
// horizontal position can range over [lo, hi) before the next hard Line.
// lo and hi narrow every time a Union is resolved one way for the whole
// range, and split into two child calls (each with its own bound) when a
// Union's decision actually depends on where in [lo, hi) we land.
func buildTree(stack []frame, lo, hi, pos int) Tree {
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		rest := stack[:n]

		switch f.doc.kind {
		case kindEmpty:
			stack = rest
			continue
		case kindText:
			c := chunkStr(f.doc.text)
			pos += len(f.doc.text)
			lo += len(f.doc.text)
			hi += len(f.doc.text)
			tailStack := cloneFrames(rest)
			tLo, tHi, tPos := lo, hi, pos
			return treeChunkNode(c, func() Tree {
				return buildTree(tailStack, tLo, tHi, tPos)
			})
		case kindLine:
			c := chunkBreak(f.indent)
			tailStack := cloneFrames(rest)
			return treeChunkNode(c, func() Tree {
				return buildTree(tailStack, f.indent, f.indent, f.indent)
			})
		case kindNest:
			stack = append(cloneFrames(rest), frame{indent: f.indent + f.doc.indent, doc: *f.doc.child})
			continue
		case kindConcat:
			stack = append(cloneFrames(rest), frame{indent: f.indent, doc: *f.doc.right}, frame{indent: f.indent, doc: *f.doc.left})
			continue
		case kindUnion:
			flat := *f.doc.left
			restStack := cloneFrames(rest)

			fitsAtLo := fits(boundedWidth(lo), restStack, frame{indent: f.indent, doc: flat})
			fitsAtHi := hi <= lo || fits(boundedWidth(hi-1), restStack, frame{indent: f.indent, doc: flat})

			switch {
			case fitsAtLo && fitsAtHi:
				stack = append(cloneFrames(rest), frame{indent: f.indent, doc: flat})
				continue
			case !fitsAtLo && !fitsAtHi:
				brk := f.doc.union.force()
				stack = append(cloneFrames(rest), frame{indent: f.indent, doc: brk})
				continue
			default:
				indent := f.indent
				brkThunk := f.doc.union
				tLo, tHi, tPos := lo, hi, pos
				leftStack := cloneFrames(rest)
				rightStack := cloneFrames(rest)
				return treeBranchNode(
					func() Tree {
						s := append(append([]frame{}, leftStack...), frame{indent: indent, doc: flat})
						return buildTree(s, tLo, tHi, tPos)
					},
					func() Tree {
						s := append(append([]frame{}, rightStack...), frame{indent: indent, doc: brkThunk.force()})
						return buildTree(s, tLo, tHi, tPos)
					},
				)
			}
		}
	}
	return treeEnd()
}

// boundedWidth turns an absolute column position into the width argument
// fits expects (columns of budget remaining before maxBound).
func boundedWidth(pos int) int {
	w := maxBound - pos
	if w < 0 {
		return 0
	}
	return w
}

// cloneFrames copies s so a closure capturing it is safe even though the
// caller's slice backing array may be reused by later appends.
func cloneFrames(s []frame) []frame {
	out := make([]frame, len(s))
	copy(out, s)
	return out
}

// docFromTree materializes a (finite) Tree back into a Doc, encoding each
// TreeBranch as a real Union and each ChunkBreak as Line().Nest(indent).
func docFromTree(t Tree) Doc {
	switch t.kind {
	case TreeEnd:
		return Empty()
	case TreeChunk:
		var head Doc
		if t.chunk.Kind == ChunkStr {
			head = Text(t.chunk.Text)
		} else {
			head = Line()
			if t.chunk.Indent != 0 {
				head = head.Nest(t.chunk.Indent)
			}
		}
		tail := t.tail
		return concat2(head, docFromTreeLazy(tail))
	case TreeBranch:
		left := t.left
		right := t.right
		flat := docFromTreeLazy(left)
		return union(flat, func() Doc { return docFromTreeLazy(right) })
	}
	return Empty()
}

func docFromTreeLazy(f func() Tree) Doc {
	if f == nil {
		return Empty()
	}
	return docFromTree(f())
}

// Deunioned yields the concrete Docs reachable by resolving each of d's
// Unions one way or the other, one Doc per distinct rendering: a
// combination that renders the same as one already yielded is skipped.
// It is exhaustive and therefore only intended for small documents
// (tests, debugging); it is exponential in the number of Unions.
func Deunioned(d Doc) iter.Seq[Doc] {
	return func(yield func(Doc) bool) {
		seen := map[string]bool{}
		deunion(d, func(leaf Doc) bool {
			key := Render(leaf, maxBound)
			if seen[key] {
				return true
			}
			seen[key] = true
			return yield(leaf)
		})
	}
}

// deunion returns false if the caller's yield asked to stop early.
func deunion(d Doc, yield func(Doc) bool) bool {
	switch d.kind {
	case kindEmpty, kindText, kindLine:
		return yield(d)
	case kindNest:
		ok := true
		deunion(*d.child, func(c Doc) bool {
			ok = yield(c.Nest(d.indent))
			return ok
		})
		return ok
	case kindConcat:
		cont := true
		deunion(*d.left, func(l Doc) bool {
			deunion(*d.right, func(r Doc) bool {
				cont = yield(concat2(l, r))
				return cont
			})
			return cont
		})
		return cont
	case kindUnion:
		cont := true
		deunion(*d.left, func(l Doc) bool {
			cont = yield(l)
			return cont
		})
		if !cont {
			return false
		}
		deunion(d.union.force(), func(r Doc) bool {
			cont = yield(r)
			return cont
		})
		return cont
	}
	return true
}
