package montyhall

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/pkg/errors"
)

// Source provides uniformly distributed integer draws.
// Draws must be independent across calls; no particular seeding or
// determinism is assumed by the simulator.
type Source interface {
	// UniformInt returns an integer uniformly distributed over
	// [low, high], inclusive of both bounds.
	UniformInt(low, high int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by the given math/rand generator.
func NewSource(rng *rand.Rand) Source {
	return &randSource{rng: rng}
}

// NewSeededSource returns a Source seeded from crypto/rand entropy.
func NewSeededSource() (Source, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, errors.Wrap(err, "unable to seed random source")
	}

	seed := int64(binary.LittleEndian.Uint64(b[:]))
	return NewSource(rand.New(rand.NewSource(seed))), nil
}

func (s *randSource) UniformInt(low, high int) int {
	return low + s.rng.Intn(high-low+1)
}
