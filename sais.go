// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

// induceL performs one left-to-right L-induction pass over sa: for every
// non-empty entry SA[i] = p >= 1, if p-1 is L-type it is placed at the
// front of its symbol's bucket. begin is recomputed from freq first.
//
// The suffix immediately before the conceptual sentinel, text[n-1], is
// always L-type (the sentinel sorts before it) and is never discovered by
// LMS seeding, since position n-1 can never be LMS. Because the sentinel
// itself is never stored in sa, position n-1 is seeded directly here,
// before the scan, rather than induced from a predecessor.
func induceL[I Index](text []I, sa []I, types []bool, freq, begin []I, minSym I) {
	bucketBegin(freq, begin)
	n := len(text)

	c := int(text[n-1] - minSym)
	sa[begin[c]] = I(n - 1)
	begin[c]++

	for i := 0; i < len(sa); i++ {
		if sa[i] == empty {
			continue
		}
		p := int(sa[i])
		if p == 0 {
			continue
		}
		j := p - 1
		if !types[j] {
			c := int(text[j] - minSym)
			sa[begin[c]] = I(j)
			begin[c]++
		}
	}
}

// induceS performs one right-to-left S-induction pass over sa: for every
// non-empty entry SA[i] = p >= 1, if p-1 is S-type it is placed at the back
// of its symbol's bucket. end is recomputed from freq first.
func induceS[I Index](text []I, sa []I, types []bool, freq, end []I, minSym I) {
	bucketEnd(freq, end)

	for i := len(sa) - 1; i >= 0; i-- {
		if sa[i] == empty {
			continue
		}
		p := int(sa[i])
		if p == 0 {
			continue
		}
		j := p - 1
		if types[j] {
			c := int(text[j] - minSym)
			sa[end[c]] = I(j)
			end[c]--
		}
	}
}

// saisRec constructs the suffix array of text by induced sorting, charging
// every auxiliary allocation - the type vector, histogram, bucket pointers,
// naming workspace, and any recursive subproblem's own buffers - to mb. The
// returned slice is never itself charged: by convention (see MemoryResult)
// the value a MemoryResult carries is not auxiliary memory.
func saisRec[I Index](text []I, mb *MemoryBuilder) []I {
	n := len(text)
	sa := make([]I, n)
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	types := make([]bool, n)
	Charge[bool](mb, n)
	classify(text, types)

	positions := lmsPositions(types)
	Charge[int](mb, len(positions))
	m := len(positions)

	minSym, maxSym := text[0], text[0]
	for _, s := range text {
		if s < minSym {
			minSym = s
		}
		if s > maxSym {
			maxSym = s
		}
	}
	sigma := int(maxSym-minSym) + 1

	freq := make([]I, sigma)
	begin := make([]I, sigma)
	end := make([]I, sigma)
	Charge[I](mb, sigma*3)
	histogram(text, freq, minSym)

	// seedLMS clears sa and places the positions of order at the ends of
	// their buckets, first to last, so that within a bucket they appear in
	// the reverse of their order in order.
	seedLMS := func(order []int) {
		for i := range sa {
			sa[i] = empty
		}
		bucketEnd(freq, end)
		for _, p := range order {
			c := int(text[p] - minSym)
			sa[end[c]] = I(p)
			end[c]--
		}
	}

	seedLMS(positions)
	induceL(text, sa, types, freq, begin, minSym)
	induceS(text, sa, types, freq, end, minSym)

	if m <= 1 {
		// Zero or one LMS position: nothing to name or recurse on, the
		// induction above already produced the final suffix array.
		return sa
	}

	sortedLMS := make([]int, 0, m)
	for _, v := range sa {
		p := int(v)
		if p > 0 && isLMS(types, p) {
			sortedLMS = append(sortedLMS, p)
		}
	}
	Charge[int](mb, len(sortedLMS))

	lengths := make([]int, n)
	Charge[int](mb, n)
	for k, p := range positions {
		lengths[p] = lmsLength(positions, k, n)
	}

	names := make([]I, n)
	Charge[I](mb, n)
	name := 0
	names[sortedLMS[0]] = 0
	for k := 1; k < len(sortedLMS); k++ {
		prev, cur := sortedLMS[k-1], sortedLMS[k]
		if lengths[prev] != lengths[cur] || !lmsSubstringsEqual(text, prev, cur, lengths[prev]) {
			name++
		}
		names[cur] = I(name)
	}
	maxName := name + 1

	reduced := make([]I, m)
	Charge[I](mb, m)
	for k, p := range positions {
		reduced[k] = names[p]
	}

	var reducedSA []I
	if maxName == m {
		// Every LMS substring is distinct: the reduced suffix array is
		// simply the inverse permutation of the name sequence, no
		// recursion needed.
		reducedSA = make([]I, m)
		Charge[I](mb, m)
		for k := 0; k < m; k++ {
			reducedSA[reduced[k]] = I(k)
		}
	} else {
		childMB := &MemoryBuilder{}
		reducedSA = saisRec(reduced, childMB)
		mb.Merge(childMB)
		Charge[I](mb, m)
	}

	// orderedLMS lists the LMS positions from the largest suffix to the
	// smallest, so that seedLMS leaves them in ascending suffix order
	// within each bucket.
	orderedLMS := make([]int, m)
	Charge[int](mb, m)
	for k := 0; k < m; k++ {
		orderedLMS[m-1-k] = positions[reducedSA[k]]
	}

	seedLMS(orderedLMS)
	induceL(text, sa, types, freq, begin, minSym)
	induceS(text, sa, types, freq, end, minSym)
	return sa
}
