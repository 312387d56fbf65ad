// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/matrix"
)

const (
	methodBuild     = "Build"
	methodFromLines = "BuildFromLines"
)

// Build converts a point count and a list of edges into an initialised
// distance matrix.
//
// Implementation:
//   - Stage 1: matrix.NewDistance(pointCount): Unreachable everywhere, 0 on the diagonal.
//   - Stage 2: validate every edge (endpoints in [1, pointCount], finite
//     non-negative cost) and apply it as d[from][to] = min(d[from][to], cost).
//
// Behavior highlights:
//   - Minimum wins: duplicate edges reconcile regardless of order.
//   - A self-loop never lowers the zero diagonal.
//   - edges is not mutated.
//
// Errors:
//   - matrix.ErrNegativePoints when pointCount < 0.
//   - *EdgeError (matches ErrMalformedEdge) with the 1-based edge index,
//     wrapping matrix.ErrOutOfRange, matrix.ErrNegativeCost or ErrBadCost.
//
// Complexity:
//   - Time O(P² + E), Space O(P²).
func Build(pointCount int, edges []Edge) (*matrix.Distance, error) {
	d, err := matrix.NewDistance(pointCount)
	if err != nil {
		return nil, networkErrorf(methodBuild, err)
	}

	for idx, e := range edges {
		if err = checkEndpoints(e, pointCount); err == nil {
			err = checkCost(e.Cost)
		}
		if err != nil {
			return nil, networkErrorf(methodBuild, &EdgeError{Index: idx + 1, Text: e.String(), Err: err})
		}
		if _, err = d.Relax(e.From, e.To, e.Cost); err != nil {
			return nil, networkErrorf(methodBuild, &EdgeError{Index: idx + 1, Text: e.String(), Err: err})
		}
	}

	return d, nil
}

// BuildFromLines parses textual descriptors and builds the matrix.
// Line numbers in errors refer to positions within lines.
func BuildFromLines(pointCount int, lines []string) (*matrix.Distance, error) {
	edges, err := ParseEdges(lines)
	if err != nil {
		return nil, networkErrorf(methodFromLines, err)
	}

	return Build(pointCount, edges)
}

func checkEndpoints(e Edge, pointCount int) error {
	if e.From < 1 || e.From > pointCount || e.To < 1 || e.To > pointCount {
		return fmt.Errorf("%w: %d->%d not within [1, %d]", matrix.ErrOutOfRange, e.From, e.To, pointCount)
	}

	return nil
}

func checkCost(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return ErrBadCost
	}
	if c < 0 {
		return matrix.ErrNegativeCost
	}

	return nil
}
