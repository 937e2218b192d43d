// Copyright (c) 2026 go-sais contributors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixArrayInverse(t *testing.T) {
	r, err := SAIS[int32]([]byte("banana"))
	require.NoError(t, err)
	sa := r.Value

	isa := sa.Inverse()
	for rank, pos := range sa.Values() {
		assert.Equal(t, int32(rank), isa.Values()[pos])
	}
	assert.Same(t, sa, isa.SuffixArray())
}

func TestSuffixArrayVerify(t *testing.T) {
	r, err := SAIS[int32]([]byte("abracadabra"))
	require.NoError(t, err)
	assert.True(t, r.Value.Verify())
}

func TestSuffixArrayVerifyDetectsCorruption(t *testing.T) {
	r, err := SAIS[int32]([]byte("abracadabra"))
	require.NoError(t, err)
	sa := r.Value
	require.GreaterOrEqual(t, len(sa.Values()), 2)
	sa.values[0] = sa.values[1]
	assert.False(t, sa.Verify())
}

func TestSuffixArrayEmptyText(t *testing.T) {
	r, err := SAIS[int32]([]byte{})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Value.Len())
	assert.True(t, r.Value.Verify())
}
