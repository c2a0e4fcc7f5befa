// SPDX-License-Identifier: MIT

package economy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/economy"
)

func TestVector_Arithmetic(t *testing.T) {
	a := economy.Vector{1, 2, 3, 4}
	b := economy.Vector{4, 3, 2, 1}
	require.Equal(t, economy.Vector{5, 5, 5, 5}, a.Add(b))
	require.Equal(t, economy.Vector{1, 2, 3, 4}, a, "Add must not mutate")

	require.True(t, a.Covers(economy.Vector{1, 2, 3, 4}))
	require.False(t, a.Covers(economy.Vector{0, 0, 4, 0}))
	require.True(t, a.NonNegative())
	require.False(t, economy.Vector{0, -1}.NonNegative())
}

func TestVector_PayChecksBeforeMutating(t *testing.T) {
	v := economy.Vector{3, 1}
	err := v.Pay(economy.Vector{2, 2})
	require.ErrorIs(t, err, economy.ErrInsufficient)
	require.Equal(t, economy.Vector{3, 1}, v)

	require.NoError(t, v.Pay(economy.Vector{2, 1}))
	require.Equal(t, economy.Vector{1, 0}, v)
	require.True(t, v.NonNegative())
}
