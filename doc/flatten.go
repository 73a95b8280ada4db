package doc

// Flatten collapses every Line and Union in d down to its flat
// alternative, producing a document that never breaks. Every Union
// encountered is resolved by taking its left (flat) branch, regardless
// of nesting depth, since flattening is a full collapse rather than a
// bounded probe.
func Flatten(d Doc) Doc {
	out, _ := FlattenOption(d)
	return out
}

// FlattenOption behaves like Flatten but additionally reports whether
// flattening changed anything. Grouped uses this to avoid wrapping an
// already-flat document in a pointless Union.
func FlattenOption(d Doc) (Doc, bool) {
	switch d.kind {
	case kindEmpty, kindText:
		return d, false
	case kindLine:
		return Space(), true
	case kindUnion:
		// d.left already is the flat alternative for Unions produced by
		// Grouped (its strong invariant: left == flatten(right)), but
		// Fill only guarantees the weaker flatten(left) == flatten(right)
		// — its left branch can itself contain further real Unions from
		// its own recursive construction. Recursing here handles both:
		// a no-op pass over an already-flat Grouped branch, and a real
		// collapse of Fill's nested choices.
		flat, _ := FlattenOption(*d.left)
		return flat, true
	case kindNest:
		// Flatten strips Nest unconditionally, the same way it collapses
		// every Union regardless of whether the chosen branch was itself
		// already flat: the result must contain no Nest at all, since no
		// Line survives underneath to consume the indentation.
		child, _ := FlattenOption(*d.child)
		return child, true
	case kindConcat:
		return flattenConcat(d)
	}
	return d, false
}

// flattenConcat collects d's Concat tree into an in-order slice of
// non-Concat leaves using an explicit stack, flattens each leaf, and
// folds the flattened leaves back together with concat2, right to left
// so every concat2 call sees a shallow leaf on its a side and stays O(1).
// The explicit stack keeps this stack-safe over a deep chain regardless
// of the traversal order concat2's right-association happens to produce.
func flattenConcat(d Doc) (Doc, bool) {
	var leaves []Doc
	type item struct {
		doc Doc
	}
	stack := []item{{doc: d}}
	for len(stack) > 0 {
		n := len(stack) - 1
		it := stack[n]
		stack = stack[:n]

		if it.doc.kind != kindConcat {
			leaves = append(leaves, it.doc)
			continue
		}
		// Push right then left so left is popped (visited) first,
		// preserving in-order traversal.
		stack = append(stack, item{doc: *it.doc.right}, item{doc: *it.doc.left})
	}

	changed := false
	flatLeaves := make([]Doc, len(leaves))
	for i, p := range leaves {
		fp, ch := FlattenOption(p)
		flatLeaves[i] = fp
		changed = changed || ch
	}
	if !changed {
		return d, false
	}

	result := Empty()
	for i := len(flatLeaves) - 1; i >= 0; i-- {
		result = concat2(flatLeaves[i], result)
	}
	return result, true
}
