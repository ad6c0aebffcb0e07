// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rand provides a seed-entropy source for Philox engines. It is
// not a general-purpose random number package: the engines in
// github.com/go-philox/philox/philox are the generators; this package's
// SplitMix64 only exists to turn a single scalar seed into the wider
// spray of 32-bit words philox.Engine.SeedFromSequence needs.
package rand

// SplitMix64 is splitmix64, a fast, small-state generator commonly used
// to seed other generators (it is the seeding source the C++ <random>
// proposal's Philox reference implementation and several of its ports
// use for exactly this purpose). It has 64 bits of state, so it is
// represented by a single word; it is not suitable as a primary stream
// generator, only as a seed spreader.
type SplitMix64 struct {
	state uint64
}

// Seed initializes the generator to a deterministic state derived from seed.
func (s *SplitMix64) Seed(seed uint64) {
	s.state = seed
}

const increment = 0x9e3779b97f4a7c15

// Uint64 returns the next 64-bit word of the splitmix64 sequence.
func (s *SplitMix64) Uint64() uint64 {
	s.state += increment
	x := s.state
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Generate fills dst with successive 32-bit halves of the splitmix64
// sequence, implementing philox.SeedSequence. An odd len(dst) discards the
// unused half of the final Uint64 draw.
func (s *SplitMix64) Generate(dst []uint32) {
	for i := 0; i < len(dst); i += 2 {
		word := s.Uint64()
		dst[i] = uint32(word)
		if i+1 < len(dst) {
			dst[i+1] = uint32(word >> 32)
		}
	}
}
