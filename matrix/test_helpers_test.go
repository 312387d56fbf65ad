// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for distance-matrix tests.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvtour/matrix"
)

// MustDistance ALLOCATES a distance matrix over n points or fails the test.
func MustDistance(t *testing.T, n int) *matrix.Distance {
	t.Helper()

	d, err := matrix.NewDistance(n)
	if err != nil {
		t.Fatalf("NewDistance(%d): %v", n, err)
	}

	return d
}

// MustRelax applies i→j = min(current, v) or fails the test.
func MustRelax(t *testing.T, d *matrix.Distance, i, j int, v float64) {
	t.Helper()

	if _, err := d.Relax(i, j, v); err != nil {
		t.Fatalf("Relax(%d,%d,%v): %v", i, j, v, err)
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}
