// Package lvtour computes the round-trip transport cost of a directed
// network of collection points.
//
// Given P points, directed routes "from,to,cost" and a depot (point 1 by
// default), lvtour relaxes all pairs of points (Floyd–Warshall) and sums,
// for every other point p, the cheapest trip depot→p plus the cheapest
// trip p→depot.
//
// Layout:
//
//	matrix/     dense 1-based distance matrix, +Inf as "unreachable", saturating add
//	network/    route line parsing, YAML/HCL network files, matrix construction
//	apsp/       in-place all-pairs relaxation and round-trip aggregation
//	roundtrip/  input validation, the pipeline and its error taxonomy
//	config/     YAML configuration
//	ctxlog/     slog logger carried in context.Context
//	server/     HTTP adapter (gin, Prometheus metrics)
//	cmd/lvtour  CLI: solve and serve
//
// Quick example:
//
//	res, err := roundtrip.Run(ctx, roundtrip.Input{
//		PointCount: "3",
//		RouteCount: "4",
//		EdgeLines:  []string{"1,2,4", "2,1,4", "1,3,9", "3,1,9"},
//	})
//	// res.TotalCost == 26
//
// An unreachable point is reported as an UnreachablePoint failure, never
// folded into the total.
package lvtour
