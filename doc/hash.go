package doc

// Hash computes a 32-bit hash of d's infinite-width rendering (its output
// stream at width maxBound, where every Union whose line fits takes its
// flat alternative and hard Lines still break), so that two Docs
// with the same rendered text at unbounded width hash identically
// regardless of how their algebra terms are structured.
//
// The seed and multiplier below match the FNV-style running hash the
// rest of the pack's string-keyed data structures use, just with the
// constants fixed so Hash is reproducible across processes and Go
// versions rather than derived from a random per-process seed.
func Hash(d Doc) uint32 {
	const (
		seed       uint32 = 0xdead60d5
		multiplier uint32 = 1500450271
	)
	h := seed
	for s := range RenderStream(d, maxBound) {
		for i := 0; i < len(s); i++ {
			h = h*multiplier + uint32(s[i])
		}
	}
	return h
}
