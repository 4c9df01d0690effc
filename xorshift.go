// Package xorshift implements a four-word xorshift PRNG (Marsaglia's xor128
// variant) for seed-reproducible game and simulation randomness.
//
// Generators are deterministic: the same seed always yields the same word
// stream. The output is not cryptographically secure, and a single Generator
// is not safe for concurrent use without external locking (use one instance
// per goroutine, or wrap calls in a mutex).
package xorshift

import (
	"sync/atomic"
	"time"
)

// Default state words fill any slot a seeding call does not overwrite. The
// non-zero entries keep the register from degenerating to all zero, which
// would pin every future output at zero.
var defaultState = [4]uint32{0, 3579545447, 340436397, 842436295}

// Generator holds the 128-bit shift register. state[0] is the seed-facing
// word, state[3] the output word updated last on every step.
type Generator struct {
	state [4]uint32
}

var seedSeq uint32

// New returns a Generator seeded from the wall clock combined with a
// process-wide counter, so that instances constructed back to back within
// one process receive distinct seeds.
func New() *Generator {
	n := atomic.AddUint32(&seedSeq, 1)
	g := &Generator{}
	g.Seed(uint32(time.Now().UnixNano()) + n*2654435761)
	return g
}

// NewSeeded returns a Generator seeded with Seed(seed).
func NewSeeded(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Seed sets state[0] and fills the remaining words with the defaults. Any
// 32-bit pattern is accepted, including bits that came from a negative
// signed value.
func (g *Generator) Seed(s0 uint32) {
	g.state = [4]uint32{s0, defaultState[1], defaultState[2], defaultState[3]}
}

// Seed2 sets state[0..1] and fills the remaining words with the defaults.
func (g *Generator) Seed2(s0, s1 uint32) {
	g.state = [4]uint32{s0, s1, defaultState[2], defaultState[3]}
}

// Seed3 sets state[0..2] and fills state[3] with the default. Three explicit
// zeros leave only state[3] non-zero; the register still never reaches the
// degenerate all-zero state.
func (g *Generator) Seed3(s0, s1, s2 uint32) {
	g.state = [4]uint32{s0, s1, s2, defaultState[3]}
}

// Seed64 splits v into its low and high 32-bit halves (arithmetic shift, so
// the sign extends into the high word) and seeds with Seed2(low, high).
func (g *Generator) Seed64(v int64) {
	g.Seed2(uint32(v), uint32(v>>32))
}

// Uint32 advances the register one step and returns the new output word.
// Every other output method derives from exactly this primitive. The shift
// triple (11, 19, 8) determines the period and must not change.
func (g *Generator) Uint32() uint32 {
	t := g.state[0] ^ (g.state[0] << 11)
	g.state[0], g.state[1], g.state[2] = g.state[1], g.state[2], g.state[3]
	g.state[3] = (g.state[3] ^ (g.state[3] >> 19)) ^ (t ^ (t >> 8))
	return g.state[3]
}
