// SPDX-License-Identifier: MIT

// Sentinel errors and result types of the all-pairs shortest-path engine.

package apsp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine.
var (
	// ErrUnreachable indicates that a round trip needs a leg with no path.
	// The concrete error is *UnreachableError.
	ErrUnreachable = errors.New("apsp: point unreachable")

	// ErrAborted indicates that RelaxAllPairsContext stopped between outer
	// iterations because its context was done. The context error is wrapped too.
	ErrAborted = errors.New("apsp: relaxation aborted")

	// ErrNonZeroDiagonal indicates a matrix whose self-distance is not 0.
	ErrNonZeroDiagonal = errors.New("apsp: diagonal must be zero")
)

// Direction names the missing leg(s) of a round trip.
type Direction int

const (
	// Outbound is origin → point.
	Outbound Direction = iota + 1
	// Return is point → origin.
	Return
	// Both legs are missing.
	Both
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Outbound:
		return "outbound"
	case Return:
		return "return"
	case Both:
		return "outbound+return"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Unreachable reports one point whose round trip from Origin cannot be made.
type Unreachable struct {
	Origin    int
	Point     int
	Direction Direction
}

// String renders "p (outbound)" style labels.
func (u Unreachable) String() string {
	return fmt.Sprintf("%d (%s)", u.Point, u.Direction)
}

// UnreachableError is returned by TotalRoundTripCost when at least one
// point cannot be visited and left. Points lists every such point, in
// ascending label order.
type UnreachableError struct {
	Origin int
	Points []Unreachable
}

// Error implements error.
func (e *UnreachableError) Error() string {
	if len(e.Points) == 1 {
		u := e.Points[0]
		return fmt.Sprintf("%s: point %d has no %s path with origin %d", ErrUnreachable, u.Point, u.Direction, e.Origin)
	}

	return fmt.Sprintf("%s: %d points have no round trip with origin %d: %v", ErrUnreachable, len(e.Points), e.Origin, e.Points)
}

// Is makes every UnreachableError match ErrUnreachable.
func (e *UnreachableError) Is(target error) bool { return target == ErrUnreachable }

// apspErrorf wraps err with an operation tag: "<op>: <err>".
func apspErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
