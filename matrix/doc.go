// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance matrix used by the lvtour
// shortest-path pipeline.
//
// What:
//
//   - Distance is a square (P+1)×(P+1) row-major table of float64 costs over
//     points labelled 1..P. Index 0 is allocated but never addressed, so a
//     point label is its own index.
//   - Unreachable (+Inf) marks "no known path". Every fresh matrix holds
//     Unreachable everywhere except the diagonal, which is 0.
//   - SaturatingAdd combines two legs so that an unreachable leg keeps the
//     sum unreachable, and two finite legs never overflow into the sentinel.
//
// Errors (sentinel):
//
//   - ErrNilMatrix, ErrNegativePoints, ErrTooLarge, ErrOutOfRange, ErrNaN,
//     ErrNegativeCost, ErrOverflow, ErrDimensionMismatch.
//
// Complexity:
//
//   - NewDistance: O(P²) time and space; At/Set/Relax: O(1); Clone: O(P²).
//
// Example:
//
//	d, _ := matrix.NewDistance(3)
//	_, _ = d.Relax(1, 2, 10)
//	v, _ := d.At(1, 2) // 10
package matrix
