// SPDX-License-Identifier: MIT

package apsp_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/apsp"
	"github.com/katalvlaran/lvtour/matrix"
)

func TestRelaxAllPairs_ViaIntermediate(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, 3, "1,2,10", "2,3,10", "1,3,100")
	require.NoError(t, apsp.RelaxAllPairs(d))

	require.Equal(t, 20.0, at(t, d, 1, 3))
	require.Equal(t, 10.0, at(t, d, 1, 2))
	require.True(t, matrix.IsUnreachable(at(t, d, 2, 1)))
	require.True(t, matrix.IsUnreachable(at(t, d, 3, 1)))
}

// Paths whose intermediates are discovered late (k ordering) still close.
func TestRelaxAllPairs_LongChainReversedLabels(t *testing.T) {
	t.Parallel()

	// 5 → 4 → 3 → 2 → 1, each hop 1.
	d := mustBuild(t, 5, "5,4,1", "4,3,1", "3,2,1", "2,1,1")
	require.NoError(t, apsp.RelaxAllPairs(d))
	require.Equal(t, 4.0, at(t, d, 5, 1))
	require.Equal(t, 2.0, at(t, d, 4, 2))
	require.True(t, matrix.IsUnreachable(at(t, d, 1, 5)))
}

func TestRelaxAllPairs_DirectedNotSymmetric(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, 2, "1,2,3", "2,1,7")
	require.NoError(t, apsp.RelaxAllPairs(d))
	require.Equal(t, 3.0, at(t, d, 1, 2))
	require.Equal(t, 7.0, at(t, d, 2, 1))
}

func TestRelaxAllPairs_ZeroCostEdges(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, 3, "1,2,0", "2,3,0", "3,1,0")
	require.NoError(t, apsp.RelaxAllPairs(d))
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			require.Equal(t, 0.0, at(t, d, i, j))
		}
	}
}

func TestRelaxAllPairs_EmptyAndTiny(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 4} {
		d := mustBuild(t, n)
		before := d.Clone()
		require.NoError(t, apsp.RelaxAllPairs(d))
		eq, err := d.Equal(before)
		require.NoError(t, err)
		require.True(t, eq, "n=%d: no edges must stay unchanged", n)
	}
}

func TestRelaxAllPairs_Idempotent(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		d := randomNetwork(t, 12, 0.25, seed)
		require.NoError(t, apsp.RelaxAllPairs(d))
		once := d.Clone()
		require.NoError(t, apsp.RelaxAllPairs(d))
		eq, err := d.Equal(once)
		require.NoError(t, err)
		require.True(t, eq, "seed=%d", seed)
	}
}

func TestRelaxAllPairs_TriangleInequality(t *testing.T) {
	t.Parallel()

	const n = 10
	for seed := int64(10); seed < 14; seed++ {
		d := randomNetwork(t, n, 0.3, seed)
		require.NoError(t, apsp.RelaxAllPairs(d))

		for i := 1; i <= n; i++ {
			require.Equal(t, 0.0, at(t, d, i, i))
			for j := 1; j <= n; j++ {
				ij := at(t, d, i, j)
				require.GreaterOrEqual(t, ij, 0.0)
				for k := 1; k <= n; k++ {
					ik, kj := at(t, d, i, k), at(t, d, k, j)
					if matrix.IsUnreachable(ik) || matrix.IsUnreachable(kj) {
						continue
					}
					require.LessOrEqual(t, ij, ik+kj, "seed=%d i=%d j=%d k=%d", seed, i, j, k)
				}
			}
		}
	}
}

// Cross-check against a straightforward Bellman–Ford style fixpoint.
func TestRelaxAllPairs_MatchesNaiveFixpoint(t *testing.T) {
	t.Parallel()

	const n = 9
	d := randomNetwork(t, n, 0.2, 42)
	naive := d.Clone()
	require.NoError(t, apsp.RelaxAllPairs(d))

	for changed := true; changed; {
		changed = false
		for i := 1; i <= n; i++ {
			for k := 1; k <= n; k++ {
				for j := 1; j <= n; j++ {
					ik, kj := at(t, naive, i, k), at(t, naive, k, j)
					if matrix.IsUnreachable(ik) || matrix.IsUnreachable(kj) {
						continue
					}
					ok, err := naive.Relax(i, j, ik+kj)
					require.NoError(t, err)
					changed = changed || ok
				}
			}
		}
	}

	eq, err := d.Equal(naive)
	require.NoError(t, err)
	require.True(t, eq, "floyd:\n%v\nnaive:\n%v", d, naive)
}

func TestRelaxAllPairs_Overflow(t *testing.T) {
	t.Parallel()

	d := mustBuild(t, 3)
	require.NoError(t, d.Set(1, 2, math.MaxFloat64))
	require.NoError(t, d.Set(2, 3, math.MaxFloat64))

	err := apsp.RelaxAllPairs(d)
	require.ErrorIs(t, err, matrix.ErrOverflow)
}

func TestRelaxAllPairs_OverflowDespiteCheaperPath(t *testing.T) {
	t.Parallel()

	// 1→3 costs 1 directly; the 1→2→3 candidate overflows and still fails the run.
	d := mustBuild(t, 3, "1,3,1")
	require.NoError(t, d.Set(1, 2, math.MaxFloat64))
	require.NoError(t, d.Set(2, 3, math.MaxFloat64))

	err := apsp.RelaxAllPairs(d)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	require.ErrorContains(t, err, "d[1][2]+d[2][3]")
}

func TestRelaxAllPairs_Preconditions(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, apsp.RelaxAllPairs(nil), matrix.ErrNilMatrix)

	d := mustBuild(t, 2)
	require.NoError(t, d.Set(2, 2, 1))
	require.ErrorIs(t, apsp.RelaxAllPairs(d), apsp.ErrNonZeroDiagonal)
	require.ErrorIs(t, apsp.RelaxAllPairsContext(context.Background(), d), apsp.ErrNonZeroDiagonal)
}

func TestRelaxAllPairsContext_MatchesPlain(t *testing.T) {
	t.Parallel()

	a := randomNetwork(t, 8, 0.3, 7)
	b := a.Clone()
	require.NoError(t, apsp.RelaxAllPairs(a))
	require.NoError(t, apsp.RelaxAllPairsContext(context.Background(), b))

	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestRelaxAllPairsContext_Aborted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := mustBuild(t, 3, "1,2,1", "2,3,1")
	before := d.Clone()
	err := apsp.RelaxAllPairsContext(ctx, d)
	require.ErrorIs(t, err, apsp.ErrAborted)
	require.True(t, errors.Is(err, context.Canceled))

	// Aborted before the first pass: nothing was touched.
	eq, eqErr := d.Equal(before)
	require.NoError(t, eqErr)
	require.True(t, eq)
}
