package philox

// Published Philox variants. Philox4x32 and Philox4x64 carry the constant
// tuples used by the original C++ proposal's philox4x32/philox4x64 type
// aliases. Philox2x32 and Philox2x64 carry the Random123 project's
// published 2-word constants, the same upstream the 4-word constants come
// from.
//
// N in {8, 16} has no published "standard" constant tuple in this module;
// a caller needing an 8- or 16-word Philox builds one directly with New
// and their own Params.
var (
	philox4x32Params = Params[uint32]{
		N: 4, R: 10, W: 32,
		Multiplier: []uint32{0xCD9E8D57, 0xD2511F53},
		RoundConst: []uint32{0x9E3779B9, 0xBB67AE85},
	}
	philox4x64Params = Params[uint64]{
		N: 4, R: 10, W: 64,
		Multiplier: []uint64{0xCA5A826395121157, 0xD2E7470EE14C6C93},
		RoundConst: []uint64{0x9E3779B97F4A7C15, 0xBB67AE8584CAA73B},
	}
	philox2x32Params = Params[uint32]{
		N: 2, R: 10, W: 32,
		Multiplier: []uint32{0xD256D193},
		RoundConst: []uint32{0x9E3779B9},
	}
	philox2x64Params = Params[uint64]{
		N: 2, R: 10, W: 64,
		Multiplier: []uint64{0xD2B74407B1CE6E93},
		RoundConst: []uint64{0x9E3779B97F4A7C15},
	}
)

// NewPhilox4x32 returns a 4x32-10 Philox engine seeded with value.
func NewPhilox4x32(value uint32) *Engine[uint32] {
	e := newUnseeded(philox4x32Params)
	e.Seed(value)
	return e
}

// DefaultPhilox4x32 returns a 4x32-10 Philox engine seeded with DefaultSeed,
// the configuration used by the standard conformance vector.
func DefaultPhilox4x32() *Engine[uint32] { return NewPhilox4x32(DefaultSeed) }

// NewPhilox4x64 returns a 4x64-10 Philox engine seeded with value.
func NewPhilox4x64(value uint64) *Engine[uint64] {
	e := newUnseeded(philox4x64Params)
	e.Seed(value)
	return e
}

// DefaultPhilox4x64 returns a 4x64-10 Philox engine seeded with DefaultSeed.
func DefaultPhilox4x64() *Engine[uint64] { return NewPhilox4x64(DefaultSeed) }

// NewPhilox2x32 returns a 2x32-10 Philox engine seeded with value.
func NewPhilox2x32(value uint32) *Engine[uint32] {
	e := newUnseeded(philox2x32Params)
	e.Seed(value)
	return e
}

// DefaultPhilox2x32 returns a 2x32-10 Philox engine seeded with DefaultSeed.
func DefaultPhilox2x32() *Engine[uint32] { return NewPhilox2x32(DefaultSeed) }

// NewPhilox2x64 returns a 2x64-10 Philox engine seeded with value.
func NewPhilox2x64(value uint64) *Engine[uint64] {
	e := newUnseeded(philox2x64Params)
	e.Seed(value)
	return e
}

// DefaultPhilox2x64 returns a 2x64-10 Philox engine seeded with DefaultSeed.
func DefaultPhilox2x64() *Engine[uint64] { return NewPhilox2x64(DefaultSeed) }
