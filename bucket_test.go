// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogram(t *testing.T) {
	text := []byte("banana")
	freq := make([]int32, 256)
	histogram(text, freq, 0)

	assert.Equal(t, int32(3), freq['a'])
	assert.Equal(t, int32(2), freq['n'])
	assert.Equal(t, int32(1), freq['b'])
}

func TestBucketBeginEnd(t *testing.T) {
	// alphabet {a, b, n} mapped to {0, 1, 2}; counts a=3, b=1, n=2.
	freq := []int32{3, 1, 2}
	begin := make([]int32, 3)
	end := make([]int32, 3)

	bucketBegin(freq, begin)
	assert.Equal(t, []int32{0, 3, 4}, begin)

	bucketEnd(freq, end)
	assert.Equal(t, []int32{2, 3, 5}, end)
}
