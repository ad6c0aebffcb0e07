package philox

import "math/bits"

// mulhilo32 returns the masked high and low W bits of a*b for a, b in
// [0, 2^w). The product fits a uint64 for any w<=32, so this is a plain
// promoted multiply, no bignum required.
func mulhilo32(w uint, mask uint32) func(a, b uint32) (hi, lo uint32) {
	return func(a, b uint32) (hi, lo uint32) {
		p := uint64(a) * uint64(b)
		hi = uint32(p>>w) & mask
		lo = uint32(p) & mask
		return hi, lo
	}
}

// mulhilo64 returns the masked high and low W bits of a*b for a, b in
// [0, 2^w), w<=64. The exact product can take up to 128 bits, so it is
// computed as a (hi, lo) uint64 pair via bits.Mul64 — the same approach
// math/rand/v2's PCG generator and Random123-style pcg Go ports use for
// 64x64->128 multiplication without a software bignum.
func mulhilo64(w uint, mask uint64) func(a, b uint64) (hi, lo uint64) {
	return func(a, b uint64) (hi, lo uint64) {
		prodHi, prodLo := bits.Mul64(a, b)
		lo = prodLo & mask
		if w >= 64 {
			hi = prodHi & mask
			return hi, lo
		}
		// Shift the 128-bit product (prodHi:prodLo) right by w bits; the
		// result is guaranteed to fit in 64 bits because the product itself
		// is less than 2^(2w).
		shifted := (prodLo >> w) | (prodHi << (64 - w))
		hi = shifted & mask
		return hi, lo
	}
}
