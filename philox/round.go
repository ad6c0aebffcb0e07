package philox

// permutationTables holds the four fixed per-round permutations, indexed by
// log2(N)-1. They are resolved once at New time into the
// engine's perm field, not looked up by N on every round — Go has no
// consteval equivalent for branching on N at compile time, so this module
// does the next best thing and pays the branch cost once per engine
// instead of once per round (see DESIGN.md OQ-1).
var permutationTables = [4][]int{
	{0, 1},
	{2, 1, 0, 3},
	{0, 5, 2, 7, 6, 3, 4, 1},
	{2, 1, 4, 9, 6, 15, 0, 3, 10, 13, 12, 11, 14, 7, 8, 5},
}

func permutationFor(n int) []int {
	switch n {
	case 2:
		return permutationTables[0]
	case 4:
		return permutationTables[1]
	case 8:
		return permutationTables[2]
	case 16:
		return permutationTables[3]
	default:
		panic("philox: word count N must be one of 2, 4, 8, 16")
	}
}

// generate runs the R-round Philox transform on e.x with key e.k, writing
// the result into e.y. e.x and e.k are left untouched — the round function
// operates on copies of K and X, and the engine's persistent counter is
// advanced separately by the caller.
//
// generate allocates nothing: scratchV and scratchK are permanent
// engine-sized scratch buffers.
func (e *Engine[T]) generate() {
	copy(e.y, e.x)
	copy(e.scratchK, e.k)
	for q := 0; q < e.r; q++ {
		for idx, p := range e.perm {
			e.scratchV[idx] = e.y[p]
		}
		for k := 0; k < e.arraySize; k++ {
			hi, lo := e.mulhilo(e.scratchV[2*k], e.multiplier[k])
			e.y[2*k+1] = lo
			e.y[2*k] = hi ^ e.scratchK[k] ^ e.scratchV[2*k+1]
			e.scratchK[k] = (e.scratchK[k] + e.roundConst[k]) & e.resultMask
		}
	}
}
