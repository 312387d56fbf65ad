// SPDX-License-Identifier: MIT

package apsp_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtour/apsp"
	"github.com/katalvlaran/lvtour/network"
)

// ExampleTotalRoundTripCost relaxes a small symmetric network and sums the
// round trips from point 1.
func ExampleTotalRoundTripCost() {
	d, _ := network.BuildFromLines(3, []string{"1,2,4", "2,1,4", "1,3,9", "3,1,9"})
	if err := apsp.RelaxAllPairs(d); err != nil {
		fmt.Println(err)
		return
	}
	total, _ := apsp.TotalRoundTripCost(d, apsp.DefaultOrigin)
	fmt.Println(total)

	// Output:
	// 26
}

// ExampleUnreachableError shows the explicit failure for a one-way network.
func ExampleUnreachableError() {
	d, _ := network.BuildFromLines(3, []string{"1,2,10", "2,3,10", "1,3,100"})
	_ = apsp.RelaxAllPairs(d)

	_, err := apsp.TotalRoundTripCost(d, 1)
	var ue *apsp.UnreachableError
	if errors.As(err, &ue) {
		fmt.Println(ue.Points)
	}

	// Output:
	// [2 (return) 3 (return)]
}
