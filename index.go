// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import "math"

// Index is the integer type used to address positions in a text, its suffix
// array, and its LCP array. SA-IS needs a signed type: during induction the
// suffix array buffer is reused to hold a transient "empty" marker for slots
// that have not been written yet, so the same storage must serve both as a
// valid non-negative position and as a signed scratch value. int32, int64
// and int (native width) are tried in that order by Build until one is wide
// enough for the text.
type Index interface {
	~int32 | ~int64 | ~int
}

// empty marks an unwritten slot in a suffix array buffer during induction.
// All final entries of a returned suffix array are non-negative; empty never
// survives past a single SA-IS call.
const empty = -1

// maxIndex returns the largest value representable by I.
func maxIndex[I Index]() I {
	var zero I
	switch any(zero).(type) {
	case int32:
		return I(math.MaxInt32)
	case int64:
		v := int64(math.MaxInt64)
		return I(v)
	case int:
		v := math.MaxInt
		return I(v)
	default:
		panic("suffixarray: unsupported index type")
	}
}

// fitsIndex reports whether a text of length n can be addressed by I.
func fitsIndex[I Index](n int) bool {
	return uint64(n) < uint64(maxIndex[I]())
}
