// SPDX-License-Identifier: MIT

package roundtrip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtour/network"
)

// Input holds the raw fields exactly as a form or command line supplies them.
type Input struct {
	PointCount string
	RouteCount string
	// EdgeLines are "from,to,cost" descriptors; blank entries are ignored.
	EdgeLines []string
}

// Problem is a validated calculation request.
type Problem struct {
	Points int
	// Routes is the declared route count. Only strict mode compares it to
	// len(Edges).
	Routes int
	Edges  []network.Edge
}

// Parse validates the raw input in the order an operator fills it in:
// point count, route count, route details, then every edge line.
//
// Errors (*Error):
//   - InvalidPointCount / InvalidRouteCount: missing, not an integer, negative.
//   - EmptyRouteDetails: no non-blank edge line.
//   - MalformedEdgeError: a line that does not parse (range checks against
//     the point count happen in Solve).
func Parse(in Input) (Problem, error) {
	points, err := parseCount(in.PointCount)
	if err != nil {
		return Problem{}, newError(InvalidPointCount, "point count "+err.Error(), err)
	}
	routes, err := parseCount(in.RouteCount)
	if err != nil {
		return Problem{}, newError(InvalidRouteCount, "route count "+err.Error(), err)
	}
	if network.CountLines(in.EdgeLines) == 0 {
		return Problem{}, newError(EmptyRouteDetails, "no route details supplied", nil)
	}

	edges, err := network.ParseEdges(in.EdgeLines)
	if err != nil {
		return Problem{}, Wrap(err)
	}

	return Problem{Points: points, Routes: routes, Edges: edges}, nil
}

// FromNetwork adapts a decoded network file. A file without a routes
// attribute declares len(Edges) routes.
func FromNetwork(n *network.Network) (Problem, error) {
	if n == nil {
		return Problem{}, newError(ProcessingError, "nil network", nil)
	}
	if n.Points < 0 {
		return Problem{}, newError(InvalidPointCount, fmt.Sprintf("point count must be >= 0, got %d", n.Points), nil)
	}
	if n.RouteCount() < 0 {
		return Problem{}, newError(InvalidRouteCount, fmt.Sprintf("route count must be >= 0, got %d", n.RouteCount()), nil)
	}
	if len(n.Edges) == 0 {
		return Problem{}, newError(EmptyRouteDetails, "no route details supplied", nil)
	}

	return Problem{Points: n.Points, Routes: n.RouteCount(), Edges: n.Edges}, nil
}

// countError explains why a count field was rejected.
type countError struct {
	raw    string
	reason string
}

func (e *countError) Error() string {
	if e.raw == "" {
		return e.reason
	}

	return fmt.Sprintf("%s: %q", e.reason, e.raw)
}

func parseCount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &countError{reason: "is required"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &countError{raw: s, reason: "is not an integer"}
	}
	if n < 0 {
		return 0, &countError{raw: s, reason: "must be >= 0"}
	}

	return n, nil
}
