// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

// classify computes the S/L type vector for text into types, which must
// have the same length as text. Per the data model: the conceptual sentinel
// at position len(text) is S-type and sorts before every real symbol, so
// text's last real position is always L-type - it is strictly greater than
// the sentinel, never equal to it. For every earlier position i, t[i] = S
// iff text[i] < text[i+1], or text[i] == text[i+1] and t[i+1] is S.
func classify[S Symbol](text []S, types []bool) {
	n := len(text)
	if n == 0 {
		return
	}
	types[n-1] = false
	for i := n - 2; i >= 0; i-- {
		switch {
		case text[i] < text[i+1]:
			types[i] = true
		case text[i] > text[i+1]:
			types[i] = false
		default:
			types[i] = types[i+1]
		}
	}
}

// isLMS reports whether position i is left-most S: S-type with an L-type
// predecessor. Position 0 is never LMS.
func isLMS(types []bool, i int) bool {
	return i > 0 && types[i] && !types[i-1]
}

// lmsPositions returns every LMS position in text, in ascending order.
func lmsPositions(types []bool) []int {
	var positions []int
	for i := 1; i < len(types); i++ {
		if isLMS(types, i) {
			positions = append(positions, i)
		}
	}
	return positions
}

// lmsLength returns the length of the LMS substring starting at
// positions[k]: the run through positions[k+1] inclusive, or through the
// conceptual sentinel at position n for the last LMS position in the list.
func lmsLength(positions []int, k, n int) int {
	if k+1 < len(positions) {
		return positions[k+1] - positions[k] + 1
	}
	return n - positions[k] + 1
}

// lmsSubstringsEqual reports whether the length-length LMS substrings
// starting at i and j are equal, symbol by symbol. The conceptual sentinel
// at position n sorts before, and never equals, any real symbol, so a
// substring that reaches it can only be equal to another substring that
// reaches it at the exact same offset.
func lmsSubstringsEqual[S Symbol](text []S, i, j, length int) bool {
	n := len(text)
	for k := 0; k < length; k++ {
		ik, jk := i+k, j+k
		iEnd, jEnd := ik == n, jk == n
		if iEnd || jEnd {
			return iEnd == jEnd
		}
		if text[ik] != text[jk] {
			return false
		}
	}
	return true
}
