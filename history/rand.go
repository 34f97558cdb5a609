package history

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// RandSource is the pluggable random source branch selection draws
// from, so tests can inject determinism. Intn(n) must return a value
// in [0, n).
type RandSource interface {
	Intn(n int) int
}

// systemRandSource wraps a math/rand.Rand seeded from crypto/rand, the
// "system-seeded generator" spec.md's default calls for.
type systemRandSource struct {
	r *mrand.Rand
}

// NewSystemRandSource returns the default RandSource: a math/rand.Rand
// seeded from crypto/rand.
func NewSystemRandSource() RandSource {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// crypto/rand failing is exceptional; fall back to a fixed
		// seed rather than leaving the source unusable.
		return &systemRandSource{r: mrand.New(mrand.NewSource(1))}
	}
	return &systemRandSource{r: mrand.New(mrand.NewSource(int64(binary.BigEndian.Uint64(seed[:]))))}
}

func (s *systemRandSource) Intn(n int) int {
	return s.r.Intn(n)
}
