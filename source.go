package xorshift

import "math/rand"

type source struct {
	g *Generator
}

// Assert that source implements rand.Source64.
var _ rand.Source64 = (*source)(nil)

func (s *source) Seed(seed int64) {
	s.g.Seed64(seed)
}

// Uint64 combines two consecutive raw words, high word first.
func (s *source) Uint64() uint64 {
	hi := uint64(s.g.Uint32())
	return hi<<32 | uint64(s.g.Uint32())
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Source adapts g into a math/rand Source64 so it can drive a *rand.Rand.
// The adapter shares g's state: draws through either advance both.
func Source(g *Generator) rand.Source {
	return &source{g: g}
}
