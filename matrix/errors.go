// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers match them via errors.Is; public methods never panic on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context (method, coordinates) is attached with
// %w wrapping so errors.Is keeps working at the outer boundary.

var (
	// ErrNilMatrix indicates that a nil *Distance (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNegativePoints is returned when a distance matrix is requested for a
	// negative number of points.
	ErrNegativePoints = errors.New("matrix: point count must be >= 0")

	// ErrTooLarge is returned when (points+1)² cells would exceed MaxCells.
	ErrTooLarge = errors.New("matrix: point count too large")

	// ErrOutOfRange indicates that a point label is outside [1, points].
	// Public indexers (At/Set/Relax) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: point out of range")

	// ErrNaN signals a NaN cost. NaN is never stored.
	ErrNaN = errors.New("matrix: NaN cost")

	// ErrNegativeCost signals a cost below zero; the network is non-negative.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrOverflow signals that adding two finite costs left the finite range.
	// Such a sum would otherwise be indistinguishable from Unreachable.
	ErrOverflow = errors.New("matrix: cost overflow")

	// ErrDimensionMismatch indicates two matrices over different point counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
