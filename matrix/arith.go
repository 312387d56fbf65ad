// SPDX-License-Identifier: MIT

package matrix

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// IsUnreachable reports whether v is the Unreachable sentinel.
func IsUnreachable(v float64) bool { return math.IsInf(v, 1) }

// SaturatingAdd returns a + b under the sentinel policy:
//   - either leg Unreachable → Unreachable, nil;
//   - both legs finite and the sum overflows → 0, ErrOverflow;
//   - otherwise the finite sum.
//
// Complexity: O(1).
func SaturatingAdd(a, b float64) (float64, error) {
	if IsUnreachable(a) || IsUnreachable(b) {
		return Unreachable, nil
	}
	s := a + b
	if math.IsInf(s, 0) {
		return 0, ErrOverflow
	}

	return s, nil
}

// Round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps aggregated costs stable across platforms without affecting order.
// Values too large to scale are returned unchanged.
func Round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.Abs(x) > math.MaxFloat64/roundScale {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
