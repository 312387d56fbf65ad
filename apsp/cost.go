// SPDX-License-Identifier: MIT
// Package apsp - round-trip aggregation over a relaxed distance matrix.
//
// Design:
//   - Unreachable legs are reported, never summed: a disconnected point is an
//     explicit *UnreachableError, not a huge finite-looking total.
//   - Finite overflow of the running sum is matrix.ErrOverflow.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(P) time, O(1) extra space (O(U) when U points are unreachable).

package apsp

import (
	"fmt"

	"github.com/katalvlaran/lvtour/matrix"
)

const (
	opTotalRoundTripCost = "TotalRoundTripCost"
	opUnreachablePoints  = "UnreachablePoints"
)

// DefaultOrigin is the distinguished point round trips start from.
const DefaultOrigin = 1

// TotalRoundTripCost sums d[origin][p] + d[p][origin] over every point p
// in [1, P] except origin.
//
// Contract:
//   - d should already be relaxed (RelaxAllPairs); the function reads it as is.
//   - P ≤ 1 returns 0 without looking at origin: there is nobody to visit.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil d.
//   - matrix.ErrOutOfRange when origin is outside [1, P] (P ≥ 2).
//   - *UnreachableError (matches ErrUnreachable) listing every point with a
//     missing outbound or return leg.
//   - matrix.ErrOverflow when the finite sum leaves the float64 range.
//
// Complexity: O(P).
func TotalRoundTripCost(d *matrix.Distance, origin int) (float64, error) {
	if d == nil {
		return 0, apspErrorf(opTotalRoundTripCost, matrix.ErrNilMatrix)
	}
	n := d.Points()
	if n <= 1 {
		return 0, nil
	}
	if origin < 1 || origin > n {
		return 0, apspErrorf(opTotalRoundTripCost, fmt.Errorf("%w: origin %d not within [1, %d]", matrix.ErrOutOfRange, origin, n))
	}

	var (
		total, out, back, leg float64
		err                   error
		missing               []Unreachable
	)
	for p := 1; p <= n; p++ {
		if p == origin {
			continue
		}
		out, _ = d.At(origin, p) // safe after range validation
		back, _ = d.At(p, origin)
		if dir, ok := missingLeg(out, back); ok {
			missing = append(missing, Unreachable{Origin: origin, Point: p, Direction: dir})
			continue
		}
		if len(missing) > 0 {
			continue // keep scanning only to collect every unreachable point
		}

		if leg, err = matrix.SaturatingAdd(out, back); err == nil {
			total, err = matrix.SaturatingAdd(total, leg)
		}
		if err != nil {
			return 0, apspErrorf(opTotalRoundTripCost, fmt.Errorf("%w at point %d", err, p))
		}
	}
	if len(missing) > 0 {
		return 0, &UnreachableError{Origin: origin, Points: missing}
	}

	return matrix.Round1e9(total), nil
}

// UnreachablePoints lists, in ascending order, every point p ≠ origin whose
// outbound or return leg is Unreachable in d. An empty result means every
// round trip is finite.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange (origin, P ≥ 1).
func UnreachablePoints(d *matrix.Distance, origin int) ([]Unreachable, error) {
	if d == nil {
		return nil, apspErrorf(opUnreachablePoints, matrix.ErrNilMatrix)
	}
	n := d.Points()
	if n == 0 {
		return nil, nil
	}
	if origin < 1 || origin > n {
		return nil, apspErrorf(opUnreachablePoints, fmt.Errorf("%w: origin %d not within [1, %d]", matrix.ErrOutOfRange, origin, n))
	}

	var out []Unreachable
	for p := 1; p <= n; p++ {
		if p == origin {
			continue
		}
		there, _ := d.At(origin, p)
		back, _ := d.At(p, origin)
		if dir, ok := missingLeg(there, back); ok {
			out = append(out, Unreachable{Origin: origin, Point: p, Direction: dir})
		}
	}

	return out, nil
}

func missingLeg(out, back float64) (Direction, bool) {
	switch outU, backU := matrix.IsUnreachable(out), matrix.IsUnreachable(back); {
	case outU && backU:
		return Both, true
	case outU:
		return Outbound, true
	case backU:
		return Return, true
	default:
		return 0, false
	}
}
