// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/matrix"
)

func TestSaturatingAdd(t *testing.T) {
	t.Parallel()

	inf := matrix.Unreachable
	cases := []struct {
		name    string
		a, b    float64
		want    float64
		wantErr error
	}{
		{"finite", 2, 3, 5, nil},
		{"zero legs", 0, 0, 0, nil},
		{"left unreachable", inf, 3, inf, nil},
		{"right unreachable", 3, inf, inf, nil},
		{"both unreachable", inf, inf, inf, nil},
		{"overflow", math.MaxFloat64, math.MaxFloat64, 0, matrix.ErrOverflow},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.SaturatingAdd(tc.a, tc.b)
			if tc.wantErr != nil {
				AssertErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// A sum of two finite legs must never be mistaken for the sentinel.
func TestSaturatingAdd_FiniteNeverUnreachable(t *testing.T) {
	t.Parallel()

	legs := []float64{0, 1, 1e9, 1e300, math.MaxFloat64 / 2}
	for _, a := range legs {
		for _, b := range legs {
			s, err := matrix.SaturatingAdd(a, b)
			if err != nil {
				require.ErrorIs(t, err, matrix.ErrOverflow)
				continue
			}
			require.False(t, matrix.IsUnreachable(s), "%g + %g", a, b)
		}
	}
}

func TestRound1e9(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.3, matrix.Round1e9(0.1+0.2))
	require.Equal(t, 26.0, matrix.Round1e9(26))
	require.True(t, matrix.IsUnreachable(matrix.Round1e9(matrix.Unreachable)))
	require.Equal(t, math.MaxFloat64, matrix.Round1e9(math.MaxFloat64))
}
