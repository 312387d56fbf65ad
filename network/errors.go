// SPDX-License-Identifier: MIT
// Package: lvtour/network
//
// errors.go - sentinel errors for the network package.
//
// Error policy:
//   • Only sentinel variables (package-level) plus *EdgeError are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every edge-level failure matches ErrMalformedEdge AND its precise cause
//     (ErrTooFewFields, ErrBadPoint, ErrBadCost, matrix.ErrOutOfRange,
//     matrix.ErrNegativeCost).

package network

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedEdge classifies any edge descriptor that cannot be applied:
// missing fields, non-numeric fields, endpoints outside [1, P] or a
// negative cost. Usage: if errors.Is(err, ErrMalformedEdge) { ... }.
var ErrMalformedEdge = errors.New("network: malformed edge")

// ErrTooFewFields indicates a descriptor with fewer than three fields.
var ErrTooFewFields = errors.New("network: expected from,to,cost")

// ErrBadPoint indicates a from/to field that is not an integer.
var ErrBadPoint = errors.New("network: point is not an integer")

// ErrBadCost indicates a cost field that is not a finite number.
var ErrBadCost = errors.New("network: cost is not a finite number")

// ErrInvalidPoints indicates a negative point count in a network file.
var ErrInvalidPoints = errors.New("network: point count must be >= 0")

// ErrInvalidRoutes indicates a negative declared route count in a network file.
var ErrInvalidRoutes = errors.New("network: route count must be >= 0")

// ErrDecode indicates a network file that could not be decoded at all.
var ErrDecode = errors.New("network: cannot decode network file")

// EdgeError describes one rejected edge descriptor.
//
// Index is the 1-based position of the edge (or line) in its input, Text the
// raw descriptor when it came from text. Err is the precise cause.
type EdgeError struct {
	Index int
	Text  string
	Err   error
}

// Error implements error.
func (e *EdgeError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrMalformedEdge.Error())
	fmt.Fprintf(&sb, " #%d", e.Index)
	if e.Text != "" {
		fmt.Fprintf(&sb, " %q", e.Text)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())

	return sb.String()
}

// Unwrap exposes the precise cause.
func (e *EdgeError) Unwrap() error { return e.Err }

// Is makes every EdgeError match ErrMalformedEdge.
func (e *EdgeError) Is(target error) bool { return target == ErrMalformedEdge }

// networkErrorf wraps err with a method tag: "<method>: <err>".
func networkErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
