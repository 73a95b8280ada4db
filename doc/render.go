package doc

import (
	"io"
	"iter"
	"strings"
)

// frame is one entry of the explicit rendering work stack: a Doc paired
// with the indentation level it should be rendered at. Concat is always
// already flat (its children pushed directly), so no render mode flag is
// needed here the way the teacher's docGroup/docSoftLine pair required
// one: Union nodes carry their own two alternatives directly.
type frame struct {
	indent int
	doc    Doc
}

// Stream is a pull-based cursor over a Doc's rendered chunk sequence.
// Next must be called repeatedly until it reports ok == false.
type Stream struct {
	width int
	col   int
	stack []frame
}

// Chunks returns a Stream ready to yield d's chunks at the given line
// width. Negative width is clamped to 0.
func Chunks(d Doc, width int) *Stream {
	if width < 0 {
		width = 0
	}
	return &Stream{
		width: width,
		stack: []frame{{indent: 0, doc: d}},
	}
}

// Next advances the stream and returns the next chunk, or ok == false
// once the document is exhausted.
func (s *Stream) Next() (Chunk, bool) {
	for len(s.stack) > 0 {
		n := len(s.stack) - 1
		f := s.stack[n]
		s.stack = s.stack[:n]

		switch f.doc.kind {
		case kindEmpty:
			continue
		case kindText:
			s.col += len(f.doc.text)
			return chunkStr(f.doc.text), true
		case kindLine:
			s.col = f.indent
			return chunkBreak(f.indent), true
		case kindNest:
			s.stack = append(s.stack, frame{indent: f.indent + f.doc.indent, doc: *f.doc.child})
		case kindConcat:
			s.stack = append(s.stack, frame{indent: f.indent, doc: *f.doc.right}, frame{indent: f.indent, doc: *f.doc.left})
		case kindUnion:
			flat := *f.doc.left
			if fits(s.width-s.col, s.stack, frame{indent: f.indent, doc: flat}) {
				s.stack = append(s.stack, frame{indent: f.indent, doc: flat})
			} else {
				brk := f.doc.union.force()
				s.stack = append(s.stack, frame{indent: f.indent, doc: brk})
			}
		}
	}
	return Chunk{}, false
}

// fits reports whether first, followed by whatever is already queued in
// tail, can be laid out flat within width columns without crossing a
// line break.
//
// A nested Union is treated exactly like a Line: probing stops and
// reports success immediately, rather than descending into the Union's
// flat branch. For a Union produced by Grouped, its flat branch is by
// construction already fully flattened (the strong invariant flat ==
// flatten(break)), so such a Union can never actually be encountered
// while probing a flat branch in the first place — the rule is a no-op
// there. But Fill's first alternative only satisfies the weaker
// invariant flatten(a) == flatten(b) and genuinely contains nested real
// Union nodes (from its own recursive construction), so probing must
// stop at them rather than force them flat, or fits would misjudge where
// Fill's first line should break.
func fits(width int, tail []frame, first frame) bool {
	if width < 0 {
		return false
	}
	stack := make([]frame, 0, len(tail)+1)
	stack = append(stack, tail...)
	stack = append(stack, first)

	for len(stack) > 0 {
		if width < 0 {
			return false
		}
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		switch f.doc.kind {
		case kindEmpty:
			continue
		case kindText:
			width -= len(f.doc.text)
		case kindLine:
			return true
		case kindUnion:
			return true
		case kindNest:
			stack = append(stack, frame{indent: f.indent + f.doc.indent, doc: *f.doc.child})
		case kindConcat:
			stack = append(stack, frame{indent: f.indent, doc: *f.doc.right}, frame{indent: f.indent, doc: *f.doc.left})
		}
	}

	return width >= 0
}

// Render lays d out within width columns, picking the flat alternative
// of each Union whenever it fits on the current line, and returns the
// result as a single string.
func Render(d Doc, width int) string {
	var sb strings.Builder
	s := Chunks(d, width)
	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// WriteTo renders d to w, stopping at the first write error.
func WriteTo(w io.Writer, d Doc, width int) error {
	s := Chunks(d, width)
	for {
		c, ok := s.Next()
		if !ok {
			return nil
		}
		if _, err := io.WriteString(w, c.String()); err != nil {
			return err
		}
	}
}

// RenderStream returns an iterator over the rendered output, one string
// fragment (ChunkStr text, or a break's newline+indent) at a time,
// without materializing the whole result up front.
func RenderStream(d Doc, width int) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := Chunks(d, width)
		for {
			c, ok := s.Next()
			if !ok {
				return
			}
			if !yield(c.String()) {
				return
			}
		}
	}
}
