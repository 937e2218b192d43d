// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import "bytes"

// SuffixArray is the suffix array of a byte text together with the text it
// indexes into. Values()[i] is the starting position, in Text(), of the
// suffix with rank i under sentinel-terminated lexicographic order.
type SuffixArray[I Index] struct {
	text   Text[byte]
	values []I
}

// Text returns the original byte slice the suffix array indexes into.
func (sa *SuffixArray[I]) Text() []byte { return sa.text.Symbols() }

// Values returns the suffix array itself: a permutation of 0..Len().
func (sa *SuffixArray[I]) Values() []I { return sa.values }

// Len returns the number of suffixes, equal to len(Text()).
func (sa *SuffixArray[I]) Len() int { return len(sa.values) }

// Inverse computes the inverse suffix array ISA, where ISA[SA[i]] = i. The
// result references sa's text and must not outlive sa.
func (sa *SuffixArray[I]) Inverse() *InverseSuffixArray[I] {
	inv := make([]I, len(sa.values))
	for i, p := range sa.values {
		inv[p] = I(i)
	}
	return &InverseSuffixArray[I]{sa: sa, values: inv}
}

// Verify reports whether Values() is a permutation of 0..Len() and whether
// every suffix it names compares strictly less than its successor. O(n^2)
// in the worst case; gated behind an explicit call, never run by SAIS.
func (sa *SuffixArray[I]) Verify() bool {
	n := len(sa.values)
	seen := make([]bool, n)
	for _, v := range sa.values {
		p := int(v)
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	text := sa.text.Symbols()
	for i := 1; i < n; i++ {
		a := text[int(sa.values[i-1]):]
		b := text[int(sa.values[i]):]
		if bytes.Compare(a, b) >= 0 {
			return false
		}
	}
	return true
}

// InverseSuffixArray is the rank of every text position in SA order. It
// references the SuffixArray it was built from and cannot outlive it.
type InverseSuffixArray[I Index] struct {
	sa     *SuffixArray[I]
	values []I
}

// Values returns the inverse permutation: Values()[p] is the rank of the
// suffix starting at text position p.
func (isa *InverseSuffixArray[I]) Values() []I { return isa.values }

// SuffixArray returns the suffix array isa was built from.
func (isa *InverseSuffixArray[I]) SuffixArray() *SuffixArray[I] { return isa.sa }

// SAIS constructs the suffix array of text using the SA-IS algorithm,
// instantiated at index width I. It fails with ErrIndexTooNarrow if
// len(text) does not fit I.
func SAIS[I Index](text []byte) (MemoryResult[*SuffixArray[I]], error) {
	n := len(text)
	if !fitsIndex[I](n) {
		return MemoryResult[*SuffixArray[I]]{}, ErrIndexTooNarrow
	}

	mb := &MemoryBuilder{}
	widened := make([]I, n)
	Charge[I](mb, n)
	for i, b := range text {
		widened[i] = I(b)
	}

	values := saisRec(widened, mb)
	sa := &SuffixArray[I]{text: NewText(text), values: values}
	return BuildResult(mb, sa), nil
}
