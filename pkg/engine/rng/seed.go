// Package rng provides the deterministic random source used by chunk generation.
// A Seed is a plain value: copying it forks an independent stream from the point
// of the copy, which generation code relies on to take side draws without
// disturbing a chunk's own stream.
package rng

import "fmt"

const golden = 0x9e3779b97f4a7c15

// Seed is xorshift128+ state plus the values it was seeded with.
type Seed struct {
	state  [2]uint64
	origin [2]uint64
}

// New seeds a stream from a single value.
func New(value uint64) Seed {
	return New2(value, value)
}

// New2 seeds a stream from two values.
func New2(a, b uint64) Seed {
	s := Seed{origin: [2]uint64{a, b}}
	x, y := a, b^golden
	s.state[0] = splitmix(&x)
	s.state[1] = splitmix(&y)
	if s.state[0] == 0 && s.state[1] == 0 {
		s.state[1] = 1
	}
	return s
}

// Origin returns the values the stream was seeded with.
func (s Seed) Origin() (uint64, uint64) {
	return s.origin[0], s.origin[1]
}

// Derive returns a new stream keyed by salt and (x, y). The result depends only
// on the origin values, never on how far this stream has advanced.
func (s Seed) Derive(salt uint64, x, y int) Seed {
	a := s.origin[0] ^ salt*golden
	a ^= uint64(int64(x)) * 0xbf58476d1ce4e5b9
	a ^= uint64(int64(y)) * 0x94d049bb133111eb
	b := s.origin[1] ^ (salt + 1)
	b ^= uint64(int64(y)) * 0xbf58476d1ce4e5b9
	b ^= uint64(int64(x)) * 0x94d049bb133111eb
	return New2(splitmix(&a), splitmix(&b))
}

// Roll returns an integer uniformly distributed in [min, max] and advances the stream.
// It panics if min > max.
func (s *Seed) Roll(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("rng: Roll(%d, %d) with min > max", min, max))
	}
	span := uint64(max-min) + 1
	if span == 0 {
		return int(s.next())
	}
	threshold := -span % span
	for {
		r := s.next()
		if r >= threshold {
			return min + int(r%span)
		}
	}
}

// Chance returns true with a probability of permille/1000.
func (s *Seed) Chance(permille int) bool {
	if permille <= 0 {
		return false
	}
	if permille >= 1000 {
		return true
	}
	return s.Roll(0, 999) < permille
}

// Shuffle permutes n elements using swap, Fisher-Yates style.
func (s *Seed) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.Roll(0, i))
	}
}

func (s *Seed) next() uint64 {
	s1 := s.state[0]
	s0 := s.state[1]
	result := s0 + s1
	s.state[0] = s0
	s1 ^= s1 << 23
	s.state[1] = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	return result
}

func splitmix(x *uint64) uint64 {
	*x += golden
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
