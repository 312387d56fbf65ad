// SPDX-License-Identifier: MIT

package network_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/network"
)

func TestBuild_InitialMatrix(t *testing.T) {
	t.Parallel()

	d, err := network.Build(3, []network.Edge{{1, 2, 10}, {2, 3, 10}, {1, 3, 100}})
	require.NoError(t, err)
	require.Equal(t, 3, d.Points())

	requireCost(t, d, 1, 1, 0)
	requireCost(t, d, 1, 2, 10)
	requireCost(t, d, 2, 3, 10)
	requireCost(t, d, 1, 3, 100)
	requireUnreachable(t, d, 2, 1)
	requireUnreachable(t, d, 3, 1)
}

func TestBuild_DuplicatesCollapseToMinimum(t *testing.T) {
	t.Parallel()

	for _, edges := range [][]network.Edge{
		{{1, 2, 5}, {1, 2, 3}},
		{{1, 2, 3}, {1, 2, 5}},
	} {
		d, err := network.Build(2, edges)
		require.NoError(t, err)
		requireCost(t, d, 1, 2, 3)
	}
}

func TestBuild_SelfLoopKeepsZeroDiagonal(t *testing.T) {
	t.Parallel()

	d, err := network.Build(1, []network.Edge{{1, 1, 7}})
	require.NoError(t, err)
	requireCost(t, d, 1, 1, 0)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	edges := []network.Edge{{1, 2, 5}, {1, 2, 3}}
	cp := append([]network.Edge(nil), edges...)
	_, err := network.Build(2, edges)
	require.NoError(t, err)
	require.Equal(t, cp, edges)
}

func TestBuild_ZeroPoints(t *testing.T) {
	t.Parallel()

	d, err := network.Build(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, d.Points())
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		points int
		edges  []network.Edge
		index  int
		cause  error
	}{
		{"from zero", 3, []network.Edge{{0, 1, 1}}, 1, matrix.ErrOutOfRange},
		{"to beyond", 3, []network.Edge{{1, 2, 1}, {1, 4, 1}}, 2, matrix.ErrOutOfRange},
		{"negative cost", 3, []network.Edge{{1, 2, -1}}, 1, matrix.ErrNegativeCost},
		{"nan cost", 3, []network.Edge{{1, 2, math.NaN()}}, 1, network.ErrBadCost},
		{"inf cost", 3, []network.Edge{{1, 2, math.Inf(1)}}, 1, network.ErrBadCost},
		{"no points", 0, []network.Edge{{1, 1, 0}}, 1, matrix.ErrOutOfRange},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := network.Build(tc.points, tc.edges)
			require.Nil(t, d)
			require.ErrorIs(t, err, network.ErrMalformedEdge)
			require.ErrorIs(t, err, tc.cause)
			var ee *network.EdgeError
			require.True(t, errors.As(err, &ee))
			require.Equal(t, tc.index, ee.Index)
		})
	}

	_, err := network.Build(-1, nil)
	require.ErrorIs(t, err, matrix.ErrNegativePoints)
	require.False(t, errors.Is(err, network.ErrMalformedEdge))
}

func TestBuildFromLines(t *testing.T) {
	t.Parallel()

	d, err := network.BuildFromLines(3, []string{"1,2,4", "2,1,4", "", "1,3,9", "3,1,9"})
	require.NoError(t, err)
	requireCost(t, d, 3, 1, 9)

	_, err = network.BuildFromLines(3, []string{"1,2"})
	require.ErrorIs(t, err, network.ErrMalformedEdge)
	require.ErrorIs(t, err, network.ErrTooFewFields)

	_, err = network.BuildFromLines(2, []string{"1,3,1"})
	require.ErrorIs(t, err, network.ErrMalformedEdge)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func requireCost(t *testing.T, d *matrix.Distance, i, j int, want float64) {
	t.Helper()

	got, err := d.At(i, j)
	require.NoError(t, err)
	require.Equal(t, want, got, "d[%d][%d]", i, j)
}

func requireUnreachable(t *testing.T, d *matrix.Distance, i, j int) {
	t.Helper()

	got, err := d.At(i, j)
	require.NoError(t, err)
	require.True(t, matrix.IsUnreachable(got), "d[%d][%d]=%v", i, j, got)
}
