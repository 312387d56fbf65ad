// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over a matrix.Distance with deterministic loop order.
//   - In-place, O(P³) time, O(1) extra space.
//
// Contract:
//   - Unreachable (+Inf) means "no path"; the diagonal must be 0 before calling.

package apsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtour/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opRelaxAllPairs        = "RelaxAllPairs"
	opRelaxAllPairsContext = "RelaxAllPairsContext"
)

// RelaxAllPairs computes all-pairs shortest paths in place on d.
//
// Contract:
//   - d non-nil, built by matrix.NewDistance (directly or via network.Build).
//   - Unreachable denotes "no edge"; the diagonal MUST be 0.
//
// Determinism:
//   - Loop order is fixed (k → i → j) over labels 1..P. k is outermost:
//     after pass k every d[i][j] is optimal among paths whose intermediate
//     points lie in 1..k.
//
// Numeric policy:
//   - A leg equal to Unreachable is skipped, so unreachable sums never
//     compete with finite costs (saturating addition).
//   - Two finite legs whose sum overflows return matrix.ErrOverflow. The
//     check runs on every candidate, including one that could never win:
//     costs near math.MaxFloat64 fail the whole run even when a cheaper
//     path to the same pair exists.
//
// Complexity: Time O(P³), Extra space O(1). No early termination.
//
// Notes:
//   - Running it again on its own output is a no-op (fixed point).
//   - Use RelaxAllPairsContext when embedding in a service that must stay responsive.
func RelaxAllPairs(d *matrix.Distance) error {
	if err := validate(d); err != nil {
		return apspErrorf(opRelaxAllPairs, err)
	}
	for k := 1; k <= d.Points(); k++ {
		if err := relaxThrough(d, k); err != nil {
			return apspErrorf(opRelaxAllPairs, err)
		}
	}

	return nil
}

// RelaxAllPairsContext is RelaxAllPairs with an abort hook: ctx is checked
// before every outer iteration. On abort d holds a consistent partial
// closure (optimal through intermediates 1..k-1) and the error matches both
// ErrAborted and ctx.Err().
func RelaxAllPairsContext(ctx context.Context, d *matrix.Distance) error {
	if err := validate(d); err != nil {
		return apspErrorf(opRelaxAllPairsContext, err)
	}
	for k := 1; k <= d.Points(); k++ {
		if err := ctx.Err(); err != nil {
			return apspErrorf(opRelaxAllPairsContext, fmt.Errorf("%w at k=%d: %w", ErrAborted, k, err))
		}
		if err := relaxThrough(d, k); err != nil {
			return apspErrorf(opRelaxAllPairsContext, err)
		}
	}

	return nil
}

// relaxThrough runs one outer pass with k as the intermediate point.
// It works on the flat buffer directly; row 0 and column 0 are skipped.
func relaxThrough(d *matrix.Distance, k int) error {
	var (
		n            = d.Points()
		stride       = d.Stride()
		data         = d.Data()
		baseK        = k * stride
		baseI        int
		i, j         int
		ik, kj, cand float64
	)

	for i = 1; i <= n; i++ { // middle: source point i
		baseI = i * stride
		ik = data[baseI+k] // current shortest distance i→k
		if matrix.IsUnreachable(ik) {
			continue // no path via k can improve i→j
		}

		for j = 1; j <= n; j++ { // inner: destination point j
			kj = data[baseK+j] // current shortest distance k→j
			if matrix.IsUnreachable(kj) {
				continue
			}
			cand = ik + kj
			if matrix.IsUnreachable(cand) {
				return fmt.Errorf("%w: d[%d][%d]+d[%d][%d]", matrix.ErrOverflow, i, k, k, j)
			}
			if cand < data[baseI+j] { // strict improvement only (deterministic tie rule)
				data[baseI+j] = cand
			}
		}
	}

	return nil
}

// validate checks the preconditions shared by both entry points.
func validate(d *matrix.Distance) error {
	if d == nil {
		return matrix.ErrNilMatrix
	}
	for i := 1; i <= d.Points(); i++ {
		v, err := d.At(i, i)
		if err != nil {
			return err
		}
		if v != 0 {
			return fmt.Errorf("%w: d[%d][%d]=%g", ErrNonZeroDiagonal, i, i, v)
		}
	}

	return nil
}
