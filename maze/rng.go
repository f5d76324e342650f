package maze

import "math/rand"

// defaultSeed replaces a zero seed so the zero value stays reproducible.
const defaultSeed int64 = 1

// NewSource returns a deterministic Source. seed == 0 uses defaultSeed;
// any other seed is used verbatim.
//
// The returned Source is not safe for concurrent use.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
