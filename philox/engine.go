package philox

// DefaultSeed is the scalar seed value a default-constructed engine uses.
const DefaultSeed = 20111115

// Params bundles the compile-time-in-spirit parameters of a Philox
// configuration: word count N, round count R, word width W, and the N/2
// multipliers and round constants, given as parallel slices (even slot j
// pairs Multiplier[j] with RoundConst[j]).
type Params[T Word] struct {
	N, R       int
	W          uint
	Multiplier []T
	RoundConst []T
}

// Engine is one configuration of the Philox counter-based generator. Build
// one with New or one of the named variant constructors (NewPhilox4x32,
// NewPhilox4x64, NewPhilox2x32, NewPhilox2x64, and their DefaultPhilox*
// forms); there is no exported way to change
// N, R, or the constants on a live Engine.
type Engine[T Word] struct {
	n, r       int
	w          uint
	arraySize  int
	resultMask T
	perm       []int
	multiplier []T
	roundConst []T
	mulhilo    func(a, b T) (hi, lo T)

	x []T // counter, little-endian word order
	k []T // key
	y []T // cached output block for the current x
	i int // index of the last consumed buffer slot; Next returns y[i+1], and i==n-1 means exhausted

	scratchV []T
	scratchK []T
}

// New builds an Engine from p, validates its data model, and seeds it with
// DefaultSeed. Invalid parameters (N not in {2,4,8,16}, R<=0, wrong-length
// constant slices, or a bad W) panic: the original template would fail to
// compile under the same conditions, and there is no useful run-time error
// path for this class of mistake — it is a programmer error, not recoverable
// input.
func New[T Word](p Params[T]) *Engine[T] {
	e := newUnseeded(p)
	e.Seed(T(DefaultSeed))
	return e
}

func newUnseeded[T Word](p Params[T]) *Engine[T] {
	switch p.N {
	case 2, 4, 8, 16:
	default:
		panic("philox: N must be one of 2, 4, 8, 16")
	}
	if p.R <= 0 {
		panic("philox: R must be > 0")
	}
	if p.W == 0 || p.W > nativeBits[T]() {
		panic("philox: W must be in (0, bit width of the word type]")
	}
	arraySize := p.N / 2
	if len(p.Multiplier) != arraySize || len(p.RoundConst) != arraySize {
		panic("philox: Multiplier and RoundConst must each have N/2 entries")
	}

	mask := maskFor[T](p.W)
	var mh func(a, b T) (hi, lo T)
	switch any(mask).(type) {
	case uint32:
		f := mulhilo32(p.W, uint32(mask))
		mh = func(a, b T) (hi, lo T) {
			h, l := f(uint32(a), uint32(b))
			return T(h), T(l)
		}
	case uint64:
		f := mulhilo64(p.W, uint64(mask))
		mh = func(a, b T) (hi, lo T) {
			h, l := f(uint64(a), uint64(b))
			return T(h), T(l)
		}
	}

	e := &Engine[T]{
		n:          p.N,
		r:          p.R,
		w:          p.W,
		arraySize:  arraySize,
		resultMask: mask,
		perm:       permutationFor(p.N),
		multiplier: append([]T(nil), p.Multiplier...),
		roundConst: append([]T(nil), p.RoundConst...),
		mulhilo:    mh,
		x:          make([]T, p.N),
		k:          make([]T, arraySize),
		y:          make([]T, p.N),
		scratchV:   make([]T, p.N),
		scratchK:   make([]T, arraySize),
	}
	e.i = e.n - 1
	return e
}

// Seed resets the engine to the stream produced by the scalar seed value.
// K[0] is set from value, K[1:] and X are zeroed, and the buffer is marked
// exhausted so the next Next() fills a fresh block.
func (e *Engine[T]) Seed(value T) {
	e.k[0] = value & e.resultMask
	for j := 1; j < e.arraySize; j++ {
		e.k[j] = 0
	}
	for j := 0; j < e.n; j++ {
		e.x[j] = 0
	}
	e.i = e.n - 1
}

// SeedSequence is a source of 32-bit entropy words, modeling the original's
// "Sseq" seed-sequence template parameter. rand.SplitMix64 is a ready-made
// implementation.
type SeedSequence interface {
	// Generate fills dst with 32-bit entropy words.
	Generate(dst []uint32)
}

// SeedFromSequence resets the engine's key from seq: it
// requests N/2*p 32-bit words, where p = ceil(W/32), and folds each group
// of p words into one key slot. X is zeroed and the buffer marked
// exhausted, exactly as in Seed.
func (e *Engine[T]) SeedFromSequence(seq SeedSequence) {
	p := int((e.w + 31) / 32)
	a := make([]uint32, e.arraySize*p)
	seq.Generate(a)
	for slot := 0; slot < e.arraySize; slot++ {
		var sum T
		for j := 0; j < p; j++ {
			sum += T(a[slot*p+j]) << uint(32*j)
		}
		e.k[slot] = sum & e.resultMask
	}
	for j := 0; j < e.n; j++ {
		e.x[j] = 0
	}
	e.i = e.n - 1
}

// SetCounter sets the counter from counter, supplied in big-endian word
// order (counter[0] is the most significant word) — the reverse of the
// engine's internal little-endian layout. It does not touch the key.
func (e *Engine[T]) SetCounter(counter []T) {
	if len(counter) != e.n {
		panic("philox: SetCounter requires exactly N words")
	}
	for j := 0; j < e.n; j++ {
		e.x[e.n-1-j] = counter[j] & e.resultMask
	}
	e.i = e.n - 1
}

// Next advances the stream by one word and returns it. It is the engine's
// generating-function call operator, operator()() in the original template.
func (e *Engine[T]) Next() T {
	e.i++
	if e.i == e.n {
		e.generate()
		e.incrementCounterByOne()
		e.i = 0
	}
	return e.y[e.i]
}

// Discard advances the stream by z words without materializing them,
// bit-identical to calling Next z times but in O(N+R*N) regardless of z.
func (e *Engine[T]) Discard(z uint64) {
	available := uint64(e.n - 1 - e.i)
	if z <= available {
		e.i += int(z)
		return
	}
	z -= available
	tail := z % uint64(e.n)
	if tail == 0 {
		e.incrementCounterBy(z / uint64(e.n))
		e.i = e.n - 1
		return
	}
	if z > uint64(e.n) {
		e.incrementCounterBy((z - 1) / uint64(e.n))
	}
	e.generate()
	e.incrementCounterByOne()
	e.i = int(tail) - 1
}

// Min returns the smallest value Next can return: always 0.
func (e *Engine[T]) Min() T { return 0 }

// Max returns the largest value Next can return: 2^W-1.
func (e *Engine[T]) Max() T { return e.resultMask }

// Equal reports whether e and other are in the same state: same key, same
// counter, same buffer index, and the same unconsumed suffix of the cached
// output block. The already-consumed prefix of Y is explicitly excluded — a
// naive element-wise compare of Y would be wrong right after SetCounter on
// one side only, since the consumed portion is stale leftover state, not
// part of what either side has promised to produce next.
func (e *Engine[T]) Equal(other *Engine[T]) bool {
	if e.n != other.n || e.r != other.r || e.w != other.w || e.i != other.i {
		return false
	}
	for j := range e.x {
		if e.x[j] != other.x[j] {
			return false
		}
	}
	for j := range e.k {
		if e.k[j] != other.k[j] {
			return false
		}
	}
	for idx := e.i + 1; idx < e.n; idx++ {
		if e.y[idx] != other.y[idx] {
			return false
		}
	}
	return true
}
