// Package entropy provides the seedable randomness handed to payload generators.
//
// A Source is not safe for concurrent use.
package entropy

import (
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Alphabet is the character set used by AlphaNumeric.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// Source draws random values from a single ChaCha8 stream.
type Source struct {
	stream *rand.ChaCha8
	rng    *rand.Rand
	seed   uint64
}

// New returns a Source whose output is fully determined by seed.
func New(seed uint64) *Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	stream := rand.NewChaCha8(key)
	return &Source{
		stream: stream,
		rng:    rand.New(stream),
		seed:   seed,
	}
}

// NewRandom returns a Source seeded from the runtime's random generator.
func NewRandom() *Source {
	return New(rand.Uint64())
}

// Seed reports the seed the Source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// AlphaNumeric returns n characters drawn uniformly from Alphabet.
func (s *Source) AlphaNumeric(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = Alphabet[s.rng.IntN(len(Alphabet))]
	}
	return string(buf)
}

// IntRange returns an int in [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// FloatRange returns a float64 in [lo, hi).
func (s *Source) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Bool flips a fair coin.
func (s *Source) Bool() bool {
	return s.rng.Uint64()&1 == 1
}

// Duration returns a duration in [0, limit].
func (s *Source) Duration(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Duration(s.rng.Int64N(int64(limit) + 1))
}

// UUID returns a version 4 UUID read from the same stream.
func (s *Source) UUID() uuid.UUID {
	// ChaCha8.Read never fails.
	return uuid.Must(uuid.NewRandomFromReader(s.stream))
}

// Perm returns a random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.rng.Perm(n)
}
