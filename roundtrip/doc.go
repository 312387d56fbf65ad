// SPDX-License-Identifier: MIT

// Package roundtrip is the calculation boundary of lvtour: it validates a
// request, runs network.Build → apsp.RelaxAllPairs → apsp.TotalRoundTripCost,
// and classifies every failure into one Kind.
//
// Adapters (CLI, HTTP) only marshal in and out of this package:
//
//	res, err := roundtrip.Run(ctx, roundtrip.Input{
//	    PointCount: "3",
//	    RouteCount: "4",
//	    EdgeLines:  []string{"1,2,4", "2,1,4", "1,3,9", "3,1,9"},
//	})
//	if err != nil {
//	    f := roundtrip.NewFailure(err) // {ErrorKind, Message}
//	    ...
//	}
//	fmt.Println(res.TotalCost) // 26
//
// Kinds: InvalidPointCount, InvalidRouteCount, EmptyRouteDetails,
// MalformedEdgeError, ProcessingError, UnreachablePoint.
//
// A point that cannot be reached from, or cannot return to, the origin is an
// UnreachablePoint failure. The total is never reported for a partially
// connected network.
package roundtrip
