// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package philox implements the core of the Philox family of counter-based
// pseudo-random number generators: a deterministic, bit-reproducible,
// seekable stream of uniform unsigned integers built from a fixed-round
// block cipher-like mixing function applied to a counter and a key.
//
// The family is parameterized by word width, word count, round count, and a
// tuple of round constants. Since Go generics have no const-generic integer
// parameters, those live as fields of an *Engine[T] that its constructor
// sets once and nothing changes afterward; NewPhilox4x32, NewPhilox4x64,
// NewPhilox2x32, and NewPhilox2x64 (and their DefaultPhilox* forms) are
// ready-built constructors for the published variants.
//
// An *Engine[T] performs no I/O and allocates nothing on its Next/Discard
// hot path. A single instance is not safe for concurrent mutation. Engines
// returned by separate constructor calls share no state and may be driven
// from different goroutines with no synchronization. Copying an Engine
// struct value does not give an independent engine: the copy shares the
// original's counter, key, and output-buffer slices.
package philox
