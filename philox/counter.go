package philox

import "math/bits"

// incrementCounterByOne adds 1 to the N-word, base-2^W counter x, with
// little-endian word order (x[0] least significant). It stops at the first
// word that does not wrap to 0; if every word wraps, the counter silently
// returns to zero — the counter space has finite period 2^(N*W) and wrap is
// defined behavior, not an error.
func (e *Engine[T]) incrementCounterByOne() {
	for j := 0; j < e.n; j++ {
		e.x[j] = (e.x[j] + 1) & e.resultMask
		if e.x[j] != 0 {
			return
		}
	}
}

// incrementCounterBy advances x by the unsigned 64-bit amount z. The carry
// must be wide enough to hold 2^W + 2^64 - 1, one
// bit more than a uint64 can hold when W=64; tmpHi/tmpLo below hold the
// accumulator as a two-word pair, as mulhilo64 holds a 64x64 product, with
// bits.Add64 supplying the carry out of each addition.
func (e *Engine[T]) incrementCounterBy(z uint64) {
	tmpLo := z
	tmpHi := uint64(0)
	for j := 0; j < e.n; j++ {
		sum, carry := bits.Add64(tmpLo, uint64(e.x[j]), 0)
		tmpLo = sum
		tmpHi += carry
		e.x[j] = T(tmpLo) & e.resultMask
		newLo := (tmpLo >> e.w) | (tmpHi << (64 - e.w))
		newHi := tmpHi >> e.w
		tmpLo, tmpHi = newLo, newHi
	}
}
