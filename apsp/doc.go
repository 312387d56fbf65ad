// SPDX-License-Identifier: MIT

// Package apsp is the shortest-path engine of lvtour: Floyd–Warshall
// relaxation over a matrix.Distance and the round-trip cost aggregation
// on top of it.
//
// Overview:
//
//   - RelaxAllPairs rewrites every d[i][j] to the cheapest path cost from i
//     to j, in place, with the classic k → i → j triple loop.
//   - RelaxAllPairsContext adds an abort hook between outer iterations.
//   - TotalRoundTripCost sums d[o][p] + d[p][o] for every p ≠ o and fails
//     with *UnreachableError instead of folding a missing leg into the total.
//   - UnreachablePoints lists the points a round trip cannot serve.
//
// Numeric policy:
//
//   - Costs are non-negative float64; matrix.Unreachable (+Inf) means no path.
//   - Unreachable legs are skipped during relaxation; finite overflow is
//     matrix.ErrOverflow.
//   - No negative-cycle detection: negative costs cannot enter a
//     matrix.Distance.
//
// Complexity:
//
//   - RelaxAllPairs: Time O(P³), Space O(1) extra.
//   - TotalRoundTripCost: Time O(P).
//
// Example:
//
//	d, _ := network.BuildFromLines(3, lines)
//	if err := apsp.RelaxAllPairs(d); err != nil {
//	    return err
//	}
//	total, err := apsp.TotalRoundTripCost(d, apsp.DefaultOrigin)
//	var ue *apsp.UnreachableError
//	if errors.As(err, &ue) {
//	    // report ue.Points
//	}
package apsp
