package xorshift

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Reciprocals mapping a raw word into a [0,1) fraction without a runtime
// division. Both are exact powers of two, so multiplying by them loses no
// precision.
const (
	inv2to31 = 1.0 / (1 << 31)
	inv2to32 = 1.0 / (1 << 32)
)

// ErrOutOfRange reports a bound ordering violation in Int31n, IntRange or
// Float64Range. The returned error wraps this sentinel with the offending
// parameter name and value.
var ErrOutOfRange = errors.New("argument out of range")

// Int31 returns the next word with the sign bit cleared, in [0, 1<<31).
func (g *Generator) Int31() int32 {
	return int32(g.Uint32() & 0x7FFFFFFF)
}

// Int31n returns a value in [0, max). max == 0 always yields 0. A negative
// max fails with ErrOutOfRange.
func (g *Generator) Int31n(max int32) (int32, error) {
	if max < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "max: %d", max)
	}
	return int32(float64(g.Int31()) * inv2to31 * float64(max)), nil
}

// IntRange returns a value in [min, max). It fails with ErrOutOfRange when
// min > max. The span is computed in 64 bits, so min and max may sit at
// opposite ends of the int32 range without overflowing.
func (g *Generator) IntRange(min, max int32) (int32, error) {
	if min > max {
		return 0, errors.Wrapf(ErrOutOfRange, "min: %d, max: %d", min, max)
	}
	span := int64(max) - int64(min)
	return int32(int64(min) + int64(float64(g.Uint32())*inv2to32*float64(span))), nil
}

// Float64 returns a value in [0.0, 1.0).
func (g *Generator) Float64() float64 {
	return float64(g.Int31()) * inv2to31
}

// Float64Range returns a value in [min, max). It fails with ErrOutOfRange
// when min > max.
func (g *Generator) Float64Range(min, max float64) (float64, error) {
	if min > max {
		return 0, errors.Wrapf(ErrOutOfRange, "min: %v, max: %v", min, max)
	}
	return min + float64(g.Uint32())*inv2to32*(max-min), nil
}

// Read fills p with the little-endian bytes of successive raw words, four
// bytes per word. A trailing 1-3 bytes consume one more word and take its
// low bytes; the unused high bytes are discarded. Read never fails and
// always returns len(p). A zero-length p consumes no words.
func (g *Generator) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, g.Uint32())
		p = p[4:]
	}
	if len(p) > 0 {
		w := g.Uint32()
		for i := range p {
			p[i] = byte(w >> (8 * uint(i)))
		}
	}
	return n, nil
}

// Bool returns true when the lowest bit of the next raw word is 0.
func (g *Generator) Bool() bool {
	return g.Uint32()&1 == 0
}
