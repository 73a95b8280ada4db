package doc

// Fill lays out ds separated by sep, packing as many elements per line as
// fit rather than choosing all-flat-or-all-broken the way Grouped does.
// Each adjacent pair is independently tested: if the pair flattens within
// the remaining width the layout stays flat across that boundary,
// otherwise sep renders in its unflattened form (typically itself a
// SpaceOrLine, so the line breaks there) and the decision restarts fresh
// at the next pair.
//
// Fill is the textbook right-recursive construction:
//
//	fill(sep, [])        = empty
//	fill(sep, [x])       = x
//	fill(sep, x:y:zs)    = union(flatten(x) <> flatten(sep) <> fill(sep, flatten(y):zs),
//	                             x <> sep <> fill(sep, y:zs))
//
// The second (break) alternative is built lazily: constructing it forces
// neither the recursive Fill call nor the Flatten of later elements until
// render actually needs that branch.
//
// This only satisfies Fill's relaxed invariant — flatten(first) ==
// flatten(second) — not the strong invariant Grouped produces, where
// first == flatten(second) outright: first's tail, fill(sep, flatten(y):zs),
// is itself a real Union choice whenever it joins two or more elements,
// rather than a merely flattened one. See render.go's fits for the
// consequence this has on probing nested Unions.
func Fill(sep Doc, ds []Doc) Doc {
	switch len(ds) {
	case 0:
		return Empty()
	case 1:
		return ds[0]
	}

	x, y := ds[0], ds[1]
	zs := ds[2:]

	flatTail := make([]Doc, 0, 1+len(zs))
	flatTail = append(flatTail, Flatten(y))
	flatTail = append(flatTail, zs...)
	first := concat2(concat2(Flatten(x), Flatten(sep)), Fill(sep, flatTail))

	makeSecond := func() Doc {
		tail := make([]Doc, 0, 1+len(zs))
		tail = append(tail, y)
		tail = append(tail, zs...)
		return concat2(concat2(x, sep), Fill(sep, tail))
	}

	return union(first, makeSecond)
}
