// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import "unsafe"

// MemoryResult pairs a value with the cumulative auxiliary bytes allocated
// while producing it. "Cumulative" rather than "peak" is deliberate: it is
// the sum over the whole recursion tree of every buffer SA-IS allocated and
// later discarded - the type vector, histograms, bucket pointers, and every
// recursive subproblem's own text and suffix array - but never the buffer
// backing Value itself.
type MemoryResult[T any] struct {
	Value T
	Bytes uint64
}

// MemoryBuilder accumulates auxiliary-byte charges across a call tree before
// being sealed into a MemoryResult by BuildResult.
type MemoryBuilder struct {
	bytes uint64
}

// Charge records an allocation of n elements of S as auxiliary memory.
func Charge[S any](b *MemoryBuilder, n int) {
	var zero S
	b.bytes += uint64(n) * uint64(unsafe.Sizeof(zero))
}

// Merge folds a child subproblem's accounted bytes into b. Used when a
// recursive SA-IS call returns its own MemoryBuilder for a reduced text.
func (b *MemoryBuilder) Merge(child *MemoryBuilder) {
	b.bytes += child.bytes
}

// Bytes returns the bytes charged to b so far.
func (b *MemoryBuilder) Bytes() uint64 { return b.bytes }

// BuildResult seals a MemoryBuilder's accounted bytes together with value
// into a MemoryResult.
func BuildResult[T any](b *MemoryBuilder, value T) MemoryResult[T] {
	return MemoryResult[T]{Value: value, Bytes: b.bytes}
}
