// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

// histogram counts occurrences of each symbol in text into freq, indexed by
// symbol minus minSym. freq must have length maxSym-minSym+1 and is cleared
// first.
func histogram[S Symbol, I Index](text []S, freq []I, minSym S) {
	clear(freq)
	for _, s := range text {
		freq[int(s)-int(minSym)]++
	}
}

// bucketBegin turns a histogram into exclusive-prefix-sum bucket-begin
// pointers: begin[c] is the first free slot for symbol c during L-induction,
// and callers advance it forward (begin[c]++) after each placement.
func bucketBegin[I Index](freq, begin []I) {
	var offset I
	for i, n := range freq {
		begin[i] = offset
		offset += n
	}
}

// bucketEnd turns a histogram into inclusive bucket-end pointers: end[c] is
// the last free slot for symbol c during S-induction (or LMS seeding), and
// callers retreat it backward (end[c]--) after each placement.
func bucketEnd[I Index](freq, end []I) {
	var offset I
	for i, n := range freq {
		offset += n
		end[i] = offset - 1
	}
}
