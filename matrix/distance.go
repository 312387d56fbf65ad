// SPDX-License-Identifier: MIT

// Package matrix - Distance storage (row-major, 1-based labels) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*stride + j.
//   - Guarantee safety at the public surface: At/Set/Relax return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDistance: O(P²) fill; At/Set/Relax: O(1); Clone/Equal: O(P²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRelax = "Relax" // method tag used in error wrappers
	ctxNew   = "NewDistance"
	ctxEqual = "Equal"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "inf"
)

// MaxCells bounds the buffer of one Distance: 1<<30 cells (8 GiB of
// float64), i.e. at most 32767 points.
const MaxCells = 1 << 30

// Unreachable is the "no path" marker. It is larger than any finite cost and
// absorbs addition: Unreachable + x == Unreachable for every x >= 0.
var Unreachable = math.Inf(1)

// distanceErrorf wraps an error with a uniform Distance context and callsite labels.
//
// Implementation:
//   - Stage 1: format "Distance.<method>(i,j): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
func distanceErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, i, j, err)
}

// Distance is a dense all-pairs cost table over points 1..P.
//   - points holds P.
//   - stride = P+1 is the row length; row 0 and column 0 are never addressed.
//   - data is a flat buffer of length stride*stride (offset = i*stride + j).
type Distance struct {
	points int       // P (>= 0)
	stride int       // P+1
	data   []float64 // row-major storage (len == stride*stride)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Distance)(nil)

// NewDistance creates the initial distance matrix for points labelled 1..points.
//
// Implementation:
//   - Stage 1: validate points >= 0 (else ErrNegativePoints) and
//     (points+1)² <= MaxCells (else ErrTooLarge).
//   - Stage 2: allocate (points+1)² cells and fill with Unreachable.
//   - Stage 3: write 0 on the diagonal for labels 1..points.
//
// Behavior highlights:
//   - points == 0 is legal: a 1×1 buffer with no addressable cell.
//   - Index 0 keeps Unreachable; it is outside every public range check.
//
// Errors:
//   - ErrNegativePoints (shape contract violation).
//   - ErrTooLarge when the buffer would exceed MaxCells.
//
// Complexity:
//   - Time O(P²), Space O(P²).
func NewDistance(points int) (*Distance, error) {
	if points < 0 {
		return nil, matrixErrorf(ctxNew, ErrNegativePoints)
	}
	// points >= MaxCells also keeps points+1 from wrapping.
	if points >= MaxCells || points+1 > MaxCells/(points+1) {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("%w: %d points exceed %d cells", ErrTooLarge, points, MaxCells))
	}

	stride := points + 1
	buf := make([]float64, stride*stride)
	for off := range buf {
		buf[off] = Unreachable
	}
	for i := 1; i <= points; i++ {
		buf[i*stride+i] = 0
	}

	return &Distance{points: points, stride: stride, data: buf}, nil
}

// Points returns P, the number of addressable points.
// Complexity: O(1).
func (d *Distance) Points() int { return d.points }

// Stride returns the row length (P+1) of the flat buffer.
// Complexity: O(1).
func (d *Distance) Stride() int { return d.stride }

// Data exposes the flat row-major buffer for hot loops in sibling packages.
// Cells in row 0 and column 0 are padding; writers must keep the
// invariants enforced by Set (no NaN, no negatives).
func (d *Distance) Data() []float64 { return d.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: validate 1 ≤ i ≤ P and 1 ≤ j ≤ P.
//   - Stage 2: compute i*stride + j.
//
// Notes:
//   - Returns the bare sentinel; public methods wrap with coordinates.
func (d *Distance) indexOf(i, j int) (int, error) {
	if i < 1 || i > d.points {
		return 0, ErrOutOfRange
	}
	if j < 1 || j > d.points {
		return 0, ErrOutOfRange
	}

	return i*d.stride + j, nil
}

// At returns the cost recorded for i→j or ErrOutOfRange.
// Unreachable pairs return Unreachable with a nil error.
// Complexity: O(1).
func (d *Distance) At(i, j int) (float64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	off, err := d.indexOf(i, j)
	if err != nil {
		return 0, distanceErrorf(ctxAt, i, j, err)
	}

	return d.data[off], nil
}

// Set stores v as the cost of i→j.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (no NaN, no negatives; Unreachable allowed).
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaN / ErrNegativeCost for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (d *Distance) Set(i, j int, v float64) error {
	if d == nil {
		return ErrNilMatrix
	}
	off, err := d.indexOf(i, j)
	if err != nil {
		return distanceErrorf(ctxSet, i, j, err)
	}
	if err = checkCost(v); err != nil {
		return distanceErrorf(ctxSet, i, j, err)
	}
	d.data[off] = v

	return nil
}

// Relax lowers the cost of i→j to v when v is strictly smaller and reports
// whether the cell changed. Larger or equal values leave the cell untouched,
// so applying the same edge twice, or a costlier duplicate, is a no-op.
//
// Errors:
//   - Same as Set.
//
// Complexity:
//   - Time O(1), Space O(1).
func (d *Distance) Relax(i, j int, v float64) (bool, error) {
	if d == nil {
		return false, ErrNilMatrix
	}
	off, err := d.indexOf(i, j)
	if err != nil {
		return false, distanceErrorf(ctxRelax, i, j, err)
	}
	if err = checkCost(v); err != nil {
		return false, distanceErrorf(ctxRelax, i, j, err)
	}
	if v < d.data[off] {
		d.data[off] = v
		return true, nil
	}

	return false, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(P²).
func (d *Distance) Clone() *Distance {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Distance{points: d.points, stride: d.stride, data: cp}
}

// Equal reports whether d and other describe the same costs for every
// addressable pair. Unreachable equals Unreachable.
//
// Errors:
//   - ErrNilMatrix if either side is nil.
//   - ErrDimensionMismatch if point counts differ.
func (d *Distance) Equal(other *Distance) (bool, error) {
	if d == nil || other == nil {
		return false, matrixErrorf(ctxEqual, ErrNilMatrix)
	}
	if d.points != other.points {
		return false, matrixErrorf(ctxEqual, ErrDimensionMismatch)
	}
	for i := 1; i <= d.points; i++ {
		base := i * d.stride
		for j := 1; j <= d.points; j++ {
			if d.data[base+j] != other.data[base+j] {
				return false, nil
			}
		}
	}

	return true, nil
}

// String renders rows 1..P for diagnostics; Unreachable prints as "inf".
// Not for hot paths.
func (d *Distance) String() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 1; i <= d.points; i++ {
		sb.WriteString(_fmtRowOpen)
		base := i * d.stride
		for j := 1; j <= d.points; j++ {
			if j > 1 {
				sb.WriteString(_fmtSep)
			}
			v := d.data[base+j]
			if IsUnreachable(v) {
				sb.WriteString(_fmtInf)
				continue
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// checkCost enforces the numeric policy shared by Set and Relax.
func checkCost(v float64) error {
	if math.IsNaN(v) {
		return ErrNaN
	}
	if v < 0 {
		return ErrNegativeCost
	}

	return nil
}
