// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import "github.com/pkg/errors"

// LCPKind selects one of the three LCP construction algorithms exposed
// through AnySuffixArray.
type LCPKind int

const (
	LCPKindNaive LCPKind = iota
	LCPKindKasai
	LCPKindPhi
)

// AnySuffixArray is a closed existential wrapper around a SuffixArray of
// whichever index width Build actually picked. Go generics cannot return a
// variously-instantiated generic type from a single function, so Build
// returns this instead, holding exactly one of the three possible concrete
// instantiations.
type AnySuffixArray struct {
	width string
	sa32  *SuffixArray[int32]
	sa64  *SuffixArray[int64]
	saN   *SuffixArray[int]
}

// Width reports which index width Build settled on: "int32", "int64", or
// "int".
func (a *AnySuffixArray) Width() string { return a.width }

// Len returns the number of suffixes.
func (a *AnySuffixArray) Len() int {
	switch {
	case a.sa32 != nil:
		return a.sa32.Len()
	case a.sa64 != nil:
		return a.sa64.Len()
	default:
		return a.saN.Len()
	}
}

// ComputeLCP runs the requested LCP algorithm to completion and discards
// the result; callers time the call around it. It exists so the harness
// can drive all three algorithms without itself depending on the index
// width Build chose.
func (a *AnySuffixArray) ComputeLCP(kind LCPKind) error {
	switch {
	case a.sa32 != nil:
		return computeLCP(a.sa32, kind)
	case a.sa64 != nil:
		return computeLCP(a.sa64, kind)
	default:
		return computeLCP(a.saN, kind)
	}
}

func computeLCP[I Index](sa *SuffixArray[I], kind LCPKind) error {
	switch kind {
	case LCPKindNaive:
		LCPNaive(sa)
	case LCPKindKasai:
		LCPKasai(sa.Inverse())
	case LCPKindPhi:
		LCPPhi(sa)
	default:
		return errors.Errorf("suffixarray: unknown LCP kind %d", kind)
	}
	return nil
}

// Verify runs SuffixArray.Verify and cross-checks LCPKasai and LCPPhi
// against the naive baseline. O(n^2) in the worst case; opt-in only.
func (a *AnySuffixArray) Verify() bool {
	switch {
	case a.sa32 != nil:
		return verifyAll(a.sa32)
	case a.sa64 != nil:
		return verifyAll(a.sa64)
	default:
		return verifyAll(a.saN)
	}
}

func verifyAll[I Index](sa *SuffixArray[I]) bool {
	if !sa.Verify() {
		return false
	}
	if !VerifyLCP(sa, LCPKasai(sa.Inverse())) {
		return false
	}
	if !VerifyLCP(sa, LCPPhi(sa)) {
		return false
	}
	return true
}

// isRetryableWidth reports whether err is the kind of failure Build should
// fall through to the next wider index width for, rather than propagate.
// Both a too-narrow width and an allocation failure are retryable: a wider
// index type uses more memory per entry, so an allocation that fails at
// int32 is not guaranteed to fail at int64 too, and deserves the same
// chance to succeed that a too-narrow width gets.
func isRetryableWidth(err error) bool {
	return errors.Is(err, ErrIndexTooNarrow) || errors.Is(err, ErrAllocationFailure)
}

// Build tries index widths int32, then int64, then native int, returning
// the first one that both fits len(text) and actually succeeds in
// constructing a suffix array. This lifts width selection into the library
// so callers - in particular the harness - never hand-roll the retry
// ladder themselves.
func Build(text []byte) (MemoryResult[*AnySuffixArray], error) {
	if r, err := SAIS[int32](text); err == nil {
		return MemoryResult[*AnySuffixArray]{
			Value: &AnySuffixArray{width: "int32", sa32: r.Value},
			Bytes: r.Bytes,
		}, nil
	} else if !isRetryableWidth(err) {
		return MemoryResult[*AnySuffixArray]{}, err
	}

	if r, err := SAIS[int64](text); err == nil {
		return MemoryResult[*AnySuffixArray]{
			Value: &AnySuffixArray{width: "int64", sa64: r.Value},
			Bytes: r.Bytes,
		}, nil
	} else if !isRetryableWidth(err) {
		return MemoryResult[*AnySuffixArray]{}, err
	}

	r, err := SAIS[int](text)
	if err != nil {
		return MemoryResult[*AnySuffixArray]{}, err
	}
	return MemoryResult[*AnySuffixArray]{
		Value: &AnySuffixArray{width: "int", saN: r.Value},
		Bytes: r.Bytes,
	}, nil
}
