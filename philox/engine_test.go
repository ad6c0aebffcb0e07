package philox

import (
	"testing"

	"github.com/go-philox/philox/rand"
)

func TestSeedResetsToFreshConstruct(t *testing.T) {
	a := NewPhilox4x32(42)
	for i := 0; i < 5; i++ {
		a.Next()
	}
	a.Seed(42)

	b := NewPhilox4x32(42)

	if !a.Equal(b) {
		t.Fatalf("Seed(42) after draws did not reset to the state of a fresh NewPhilox4x32(42)")
	}
	for i := 0; i < 8; i++ {
		if got, want := a.Next(), b.Next(); got != want {
			t.Errorf("draw %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSeedMasksToWordWidth(t *testing.T) {
	p := Params[uint32]{N: 4, R: 10, W: 8, Multiplier: philox4x32Params.Multiplier, RoundConst: philox4x32Params.RoundConst}
	e := newUnseeded(p)
	e.Seed(0x1FF) // only the low 8 bits should survive
	if got, want := e.k[0], uint32(0xFF); got != want {
		t.Errorf("k[0] = %#x, want %#x", got, want)
	}
}

func TestSetCounterIsBigEndian(t *testing.T) {
	e := NewPhilox4x32(7)
	e.SetCounter([]uint32{0x04, 0x03, 0x02, 0x01})
	// internal layout is little-endian: x[0] least significant.
	want := []uint32{0x01, 0x02, 0x03, 0x04}
	for i := range want {
		if e.x[i] != want[i] {
			t.Fatalf("x = %v, want %v", e.x, want)
		}
	}
}

func TestSeedFromSequence(t *testing.T) {
	var src rand.SplitMix64
	src.Seed(12345)

	a := NewPhilox4x64(0)
	a.SeedFromSequence(&src)

	var src2 rand.SplitMix64
	src2.Seed(12345)
	b := NewPhilox4x64(0)
	b.SeedFromSequence(&src2)

	if !a.Equal(b) {
		t.Fatalf("SeedFromSequence is not deterministic given the same seed-sequence seed")
	}
	if got, want := a.Next(), b.Next(); got != want {
		t.Errorf("first draw after SeedFromSequence differs: got %d, want %d", got, want)
	}
}

func TestMinMax(t *testing.T) {
	e32 := NewPhilox4x32(0)
	if e32.Min() != 0 {
		t.Errorf("Philox4x32.Min() = %d, want 0", e32.Min())
	}
	if e32.Max() != 0xFFFFFFFF {
		t.Errorf("Philox4x32.Max() = %#x, want %#x", e32.Max(), uint32(0xFFFFFFFF))
	}

	e64 := NewPhilox4x64(0)
	if e64.Max() != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("Philox4x64.Max() = %#x, want %#x", e64.Max(), uint64(0xFFFFFFFFFFFFFFFF))
	}
}

func TestEqualIgnoresConsumedPrefix(t *testing.T) {
	// Both engines are at the exhausted sentinel i = n-1: their entire y
	// block is "already consumed," so the unconsumed suffix y[i+1:] is
	// empty and must compare equal regardless of what stale values the
	// two engines happen to carry in y — the exact case where a naive
	// element-wise compare of y would get the wrong answer.
	a := NewPhilox4x32(99)
	b := NewPhilox4x32(99)
	b.y[0], b.y[1], b.y[2], b.y[3] = 111, 222, 333, 444

	if a.i != b.i || a.i != a.n-1 {
		t.Fatalf("test setup invalid: expected both engines at the exhausted sentinel i=%d, got a.i=%d b.i=%d", a.n-1, a.i, b.i)
	}
	if !a.Equal(b) {
		t.Fatalf("engines with the same counter/key/index but different stale y contents should be Equal when i is the exhausted sentinel; got false")
	}
}

func TestNotEqualOnUnconsumedSuffixMismatch(t *testing.T) {
	a := NewPhilox4x32(99)
	b := NewPhilox4x32(99)
	a.generate()
	b.generate()
	a.i, b.i = 0, 0
	b.y[3]++ // perturb a word still in the unconsumed suffix (indices 1..3)

	if a.Equal(b) {
		t.Fatalf("engines whose unconsumed suffix differs should not be Equal")
	}
}

func TestNotEqualOnDifferentKey(t *testing.T) {
	a := NewPhilox4x32(1)
	b := NewPhilox4x32(2)
	if a.Equal(b) {
		t.Fatalf("engines seeded with different values should not be Equal")
	}
}

func TestSetCounterConformance4x32(t *testing.T) {
	e := DefaultPhilox4x32()
	e.SetCounter([]uint32{0, 0, 0, 2499})
	var got uint32
	for i := 0; i < 4; i++ {
		got = e.Next()
	}
	if want := uint32(1955073260); got != want {
		t.Errorf("Philox4x32 draw 4 after SetCounter([0,0,0,2499]) = %d, want %d", got, want)
	}
}

func TestSetCounterConformance4x64(t *testing.T) {
	e := DefaultPhilox4x64()
	e.SetCounter([]uint64{0, 0, 0, 2499})
	var got uint64
	for i := 0; i < 4; i++ {
		got = e.Next()
	}
	if want := uint64(3409172418970261260); got != want {
		t.Errorf("Philox4x64 draw 4 after SetCounter([0,0,0,2499]) = %d, want %d", got, want)
	}
}

func TestCounterOverflowWrapsToFreshState(t *testing.T) {
	overflowed := DefaultPhilox4x32()
	overflowed.SetCounter([]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF})
	for i := 0; i < overflowed.n; i++ {
		overflowed.Next()
	}

	fresh := DefaultPhilox4x32()

	if !overflowed.Equal(fresh) {
		t.Fatalf("engine did not wrap to the state of a fresh default-counter engine after N draws past all-max counter")
	}
	for i := 0; i < 8; i++ {
		if got, want := overflowed.Next(), fresh.Next(); got != want {
			t.Errorf("draw %d after wrap: got %d, want %d", i, got, want)
		}
	}
}

func TestCounterOverflowWrapsToFreshState64(t *testing.T) {
	overflowed := DefaultPhilox4x64()
	overflowed.SetCounter([]uint64{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF})
	for i := 0; i < overflowed.n; i++ {
		overflowed.Next()
	}

	fresh := DefaultPhilox4x64()

	if !overflowed.Equal(fresh) {
		t.Fatalf("engine did not wrap to the state of a fresh default-counter engine after N draws past all-max counter")
	}
	for i := 0; i < 8; i++ {
		if got, want := overflowed.Next(), fresh.Next(); got != want {
			t.Errorf("draw %d after wrap: got %d, want %d", i, got, want)
		}
	}
}

func TestNewWithNEightDrawsDeterministicallyWithinMask(t *testing.T) {
	p := Params[uint32]{
		N: 8, R: 10,
		W:          32,
		Multiplier: []uint32{0xCD9E8D57, 0xD2511F53, 0xCD9E8D57, 0xD2511F53},
		RoundConst: []uint32{0x9E3779B9, 0xBB67AE85, 0x9E3779B9, 0xBB67AE85},
	}
	a := New(p)
	b := New(p)
	for i := 0; i < 8; i++ {
		ga, gb := a.Next(), b.Next()
		if ga != gb {
			t.Fatalf("draw %d: N=8 engine is not deterministic: got %d and %d from identically-seeded engines", i, ga, gb)
		}
		if ga > a.Max() {
			t.Errorf("draw %d: %d exceeds Max() %d", i, ga, a.Max())
		}
	}
}

func TestNewWithNSixteenDrawsDeterministicallyWithinMask(t *testing.T) {
	p := Params[uint32]{
		N: 16, R: 10,
		W: 32,
		Multiplier: []uint32{
			0xCD9E8D57, 0xD2511F53, 0xCD9E8D57, 0xD2511F53,
			0xCD9E8D57, 0xD2511F53, 0xCD9E8D57, 0xD2511F53,
		},
		RoundConst: []uint32{
			0x9E3779B9, 0xBB67AE85, 0x9E3779B9, 0xBB67AE85,
			0x9E3779B9, 0xBB67AE85, 0x9E3779B9, 0xBB67AE85,
		},
	}
	a := New(p)
	b := New(p)
	for i := 0; i < 16; i++ {
		ga, gb := a.Next(), b.Next()
		if ga != gb {
			t.Fatalf("draw %d: N=16 engine is not deterministic: got %d and %d from identically-seeded engines", i, ga, gb)
		}
		if ga > a.Max() {
			t.Errorf("draw %d: %d exceeds Max() %d", i, ga, a.Max())
		}
	}
}

func TestNewPanicsOnInvalidN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New with N=3 should panic")
		}
	}()
	New(Params[uint32]{N: 3, R: 10, W: 32, Multiplier: []uint32{0, 0}, RoundConst: []uint32{0, 0}})
}

func TestNewPanicsOnWrongConstantLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New with a short Multiplier slice should panic")
		}
	}()
	New(Params[uint32]{N: 4, R: 10, W: 32, Multiplier: []uint32{1}, RoundConst: []uint32{1, 2}})
}
