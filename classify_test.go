// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		text  []byte
		types []bool
	}{
		"banana": {
			text:  []byte("banana"),
			types: []bool{false, true, false, true, false, false},
		},
		"same characters": {
			text:  []byte("aaaa"),
			types: []bool{false, false, false, false},
		},
		"reverse sorted": {
			text:  []byte{5, 4, 3, 2, 1},
			types: []bool{false, false, false, false, false},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			types := make([]bool, len(tc.text))
			classify(tc.text, types)
			assert.Equal(t, tc.types, types)
		})
	}
}

func TestLMSPositions(t *testing.T) {
	text := []byte("banana")
	types := make([]bool, len(text))
	classify(text, types)

	positions := lmsPositions(types)
	assert.Equal(t, []int{1, 3}, positions)
}

func TestLMSPositionsNone(t *testing.T) {
	text := []byte("aab")
	types := make([]bool, len(text))
	classify(text, types)
	assert.Equal(t, []bool{true, true, false}, types)
	assert.Empty(t, lmsPositions(types))
}

func TestLMSSubstringsEqual(t *testing.T) {
	text := []byte("mississippi")
	types := make([]bool, len(text))
	classify(text, types)
	positions := lmsPositions(types)

	// "issi" appears twice among the LMS substrings of mississippi.
	var a, b int = -1, -1
	for k, p := range positions {
		length := lmsLength(positions, k, len(text))
		if length == 4 && text[p] == 'i' {
			if a == -1 {
				a = p
			} else {
				b = p
			}
		}
	}
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.True(t, lmsSubstringsEqual(text, a, b, 4))
}

func TestLMSSubstringsEqualSentinel(t *testing.T) {
	text := []byte("aabab")
	n := len(text)
	// Last LMS substring reaches the conceptual sentinel at position n; it
	// cannot equal one that does not.
	assert.False(t, lmsSubstringsEqual(text, 1, 3, n-1))
}
