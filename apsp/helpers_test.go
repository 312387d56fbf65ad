// SPDX-License-Identifier: MIT

package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/network"
)

// mustBuild builds the initial matrix from descriptor lines or fails the test.
func mustBuild(t testing.TB, points int, lines ...string) *matrix.Distance {
	t.Helper()

	d, err := network.BuildFromLines(points, lines)
	require.NoError(t, err)

	return d
}

// at reads d[i][j] or fails the test.
func at(t testing.TB, d *matrix.Distance, i, j int) float64 {
	t.Helper()

	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

// randomNetwork builds a reproducible sparse directed network with integer costs.
func randomNetwork(t testing.TB, points int, density float64, seed int64) *matrix.Distance {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	edges := make([]network.Edge, 0, points*points)
	for i := 1; i <= points; i++ {
		for j := 1; j <= points; j++ {
			if i != j && rng.Float64() < density {
				edges = append(edges, network.Edge{From: i, To: j, Cost: float64(rng.Intn(50))})
			}
		}
	}
	d, err := network.Build(points, edges)
	require.NoError(t, err)

	return d
}
