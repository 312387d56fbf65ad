// SPDX-License-Identifier: MIT

// Package network turns raw route descriptions into an initialised
// distance matrix.
//
// Inputs come in three shapes:
//
//   - text lines "from,to,cost" (ParseEdge, ParseEdges, SplitLines),
//   - structured []Edge (Build),
//   - network files in YAML or HCL (DecodeYAML, DecodeHCL, Load).
//
// Build allocates a (P+1)×(P+1) matrix.Distance with Unreachable
// everywhere and a zero diagonal, then applies every edge as
// d[from][to] = min(d[from][to], cost). Duplicate edges therefore collapse to
// their minimum regardless of order.
//
// Every rejected descriptor is an *EdgeError that matches ErrMalformedEdge
// and unwraps to the precise cause.
//
// Example:
//
//	d, err := network.BuildFromLines(3, []string{"1,2,10", "2,3,10"})
//	if errors.Is(err, network.ErrMalformedEdge) {
//	    // report the bad line
//	}
package network
