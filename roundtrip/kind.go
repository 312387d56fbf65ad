// SPDX-License-Identifier: MIT

package roundtrip

import (
	"errors"
	"fmt"
)

// Kind classifies a failed calculation for the adapter that renders it.
type Kind int

const (
	// InvalidPointCount: the point count is missing, not an integer or negative.
	InvalidPointCount Kind = iota + 1
	// InvalidRouteCount: the route count is missing, not an integer or negative,
	// or (strict mode) disagrees with the number of edge lines.
	InvalidRouteCount
	// EmptyRouteDetails: no edge line was supplied.
	EmptyRouteDetails
	// MalformedEdgeError: an edge line is not "from,to,cost" with valid values.
	MalformedEdgeError
	// ProcessingError: any other failure during computation.
	ProcessingError
	// UnreachablePoint: some point has no path to or from the origin.
	UnreachablePoint
)

var kindNames = map[Kind]string{
	InvalidPointCount:  "InvalidPointCount",
	InvalidRouteCount:  "InvalidRouteCount",
	EmptyRouteDetails:  "EmptyRouteDetails",
	MalformedEdgeError: "MalformedEdgeError",
	ProcessingError:    "ProcessingError",
	UnreachablePoint:   "UnreachablePoint",
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		InvalidPointCount,
		InvalidRouteCount,
		EmptyRouteDetails,
		MalformedEdgeError,
		ProcessingError,
		UnreachablePoint,
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name, so JSON carries "UnreachablePoint".
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("roundtrip: unknown kind %d", int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("roundtrip: unknown kind %q", text)
}

// Sentinel errors, one per Kind. Every *Error matches the sentinel of its
// Kind: errors.Is(err, ErrUnreachablePoint).
var (
	ErrInvalidPointCount = errors.New("roundtrip: invalid point count")
	ErrInvalidRouteCount = errors.New("roundtrip: invalid route count")
	ErrEmptyRouteDetails = errors.New("roundtrip: empty route details")
	ErrMalformedEdge     = errors.New("roundtrip: malformed edge")
	ErrProcessing        = errors.New("roundtrip: processing error")
	ErrUnreachablePoint  = errors.New("roundtrip: unreachable point")
)

// Sentinel returns the sentinel error of k, or nil for an unknown kind.
func (k Kind) Sentinel() error {
	switch k {
	case InvalidPointCount:
		return ErrInvalidPointCount
	case InvalidRouteCount:
		return ErrInvalidRouteCount
	case EmptyRouteDetails:
		return ErrEmptyRouteDetails
	case MalformedEdgeError:
		return ErrMalformedEdge
	case ProcessingError:
		return ErrProcessing
	case UnreachablePoint:
		return ErrUnreachablePoint
	default:
		return nil
	}
}
