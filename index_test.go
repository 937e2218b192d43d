// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitsIndex(t *testing.T) {
	tests := map[string]struct {
		n    int
		fits bool
	}{
		"zero always fits":          {n: 0, fits: true},
		"small text fits int32":     {n: 1000, fits: true},
		"at int32 max does not fit": {n: 1<<31 - 1, fits: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.fits, fitsIndex[int32](tc.n))
		})
	}
}

func TestFitsIndexInt64(t *testing.T) {
	assert.True(t, fitsIndex[int64](1<<31))
	assert.True(t, fitsIndex[int64](1<<40))
}
