package philox

import (
	"fmt"
	"strconv"
	"strings"
)

// MarshalText encodes the engine's full internal state — configuration
// echo, counter, key, cached output block, and buffer index — as
// whitespace-separated decimal fields, the same convention the C++
// standard library's random engines use for their stream insertion
// operator. The configuration echo (n, r, w) is
// there purely so UnmarshalText can reject a text blob produced by a
// differently-configured engine; it is never used to reconfigure the
// receiver, since N, R, and W are fixed at construction (see DESIGN.md's
// note on why this module does not support that).
func (e *Engine[T]) MarshalText() ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d %d", e.n, e.r, e.w, e.i)
	for _, word := range e.x {
		fmt.Fprintf(&b, " %d", uint64(word))
	}
	for _, word := range e.k {
		fmt.Fprintf(&b, " %d", uint64(word))
	}
	for _, word := range e.y {
		fmt.Fprintf(&b, " %d", uint64(word))
	}
	return []byte(b.String()), nil
}

// UnmarshalText restores a state previously produced by MarshalText on an
// engine with the same N, R, and W, so that read(write(E)) reproduces E.
// It fails — wrapping the failure as a *ParseError via this module's
// forked errors package — on a field-count mismatch, a malformed integer,
// a configuration echo that does not match the receiver, or any word or
// buffer index out of range for the receiver's W and N. A failed call
// leaves the receiver's state untouched.
func (e *Engine[T]) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	want := 4 + e.n + e.arraySize + e.n
	if len(fields) != want {
		return newParseError("header", fmt.Errorf("expected %d whitespace-separated fields, got %d", want, len(fields)))
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return newParseError("n", err)
	}
	r, err := strconv.Atoi(fields[1])
	if err != nil {
		return newParseError("r", err)
	}
	w, err := strconv.Atoi(fields[2])
	if err != nil {
		return newParseError("w", err)
	}
	if n != e.n || r != e.r || uint(w) != e.w {
		return newParseError("header", fmt.Errorf("encoded configuration n=%d r=%d w=%d does not match engine n=%d r=%d w=%d", n, r, w, e.n, e.r, e.w))
	}

	i, err := strconv.Atoi(fields[3])
	if err != nil {
		return newParseError("i", err)
	}
	if i < 0 || i >= e.n {
		return newParseError("i", fmt.Errorf("buffer index %d out of range [0, %d)", i, e.n))
	}

	idx := 4
	x, err := parseWords[T](fields[idx:idx+e.n], e.resultMask)
	if err != nil {
		return newParseError("x", err)
	}
	idx += e.n
	k, err := parseWords[T](fields[idx:idx+e.arraySize], e.resultMask)
	if err != nil {
		return newParseError("k", err)
	}
	idx += e.arraySize
	y, err := parseWords[T](fields[idx:idx+e.n], e.resultMask)
	if err != nil {
		return newParseError("y", err)
	}

	e.x, e.k, e.y, e.i = x, k, y, i
	return nil
}

func parseWords[T Word](fields []string, mask T) ([]T, error) {
	words := make([]T, len(fields))
	for j, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, err
		}
		if v > uint64(mask) {
			return nil, fmt.Errorf("word %d out of range for %d-bit word", v, bitsInMask(mask))
		}
		words[j] = T(v)
	}
	return words, nil
}

func bitsInMask[T Word](mask T) int {
	n := 0
	for m := uint64(mask); m != 0; m >>= 1 {
		n++
	}
	return n
}
