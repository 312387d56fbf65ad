// SPDX-License-Identifier: MIT

package roundtrip

import (
	"errors"

	"github.com/katalvlaran/lvtour/apsp"
)

// ErrBadOrigin indicates that WithOrigin received a label below 1.
var ErrBadOrigin = errors.New("roundtrip: origin must be >= 1")

// ErrBadLimit indicates that WithLimits received a bound below 1.
var ErrBadLimit = errors.New("roundtrip: limits must be >= 1")

// Options configures Solve.
//
//   - Origin: point round trips start from (default apsp.DefaultOrigin).
//   - StrictRouteCount: the declared route count must equal the number of
//     edges; when false a mismatch is only logged.
//   - MaxPoints, MaxEdges: upper bounds set by WithLimits; 0 leaves the
//     count unbounded apart from matrix.MaxCells.
type Options struct {
	Origin           int
	StrictRouteCount bool
	MaxPoints        int
	MaxEdges         int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithOrigin sets the origin point. Must be >= 1; panics otherwise, as the
// origin is configuration, not user input.
func WithOrigin(p int) Option {
	return func(o *Options) {
		if p < 1 {
			panic(ErrBadOrigin.Error())
		}
		o.Origin = p
	}
}

// WithStrictRouteCount rejects requests whose declared route count differs
// from the number of edge lines.
func WithStrictRouteCount() Option {
	return func(o *Options) {
		o.StrictRouteCount = true
	}
}

// WithLimits bounds the work of one calculation: relaxation is O(P³) time
// and O(P²) memory. Both bounds must be >= 1; panics otherwise.
func WithLimits(maxPoints, maxEdges int) Option {
	return func(o *Options) {
		if maxPoints < 1 || maxEdges < 1 {
			panic(ErrBadLimit.Error())
		}
		o.MaxPoints = maxPoints
		o.MaxEdges = maxEdges
	}
}

// DefaultOptions returns the lenient defaults with origin point 1.
func DefaultOptions() Options {
	return Options{
		Origin:           apsp.DefaultOrigin,
		StrictRouteCount: false,
	}
}
