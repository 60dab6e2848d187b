// Package treemap turns a weighted hierarchy into an exact, gap-free
// partition of an integer cell grid and maps grid points back to nodes.
package treemap

import (
	"fmt"
	"math"
	"sort"
)

// RoundExact converts non-negative reals into integers that sum exactly to
// target. Each result is the floor or the ceiling of its input; the
// target−Σ⌊xs⌋ entries with the largest fractional remainders are rounded
// up, earlier index winning ties. The caller guarantees target ≥ Σ⌊xs⌋ (the
// layout scale factor makes Σxs equal the available cells); a shortfall here
// is a defect, not an input error.
func RoundExact(xs []float64, target int) []int {
	ys := make([]int, len(xs))
	floorSum := 0
	for i, x := range xs {
		ys[i] = int(math.Floor(x))
		floorSum += ys[i]
	}

	d := target - floorSum
	if d < 0 {
		panic(fmt.Sprintf("treemap: rounding target %d below floor sum %d", target, floorSum))
	}
	if d == 0 {
		return ys
	}
	if d > len(xs) {
		panic(fmt.Sprintf("treemap: rounding deficit %d exceeds %d entries", d, len(xs)))
	}

	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	// Stable sort keeps the earlier original index first on equal remainders.
	sort.SliceStable(idx, func(a, b int) bool {
		fa := xs[idx[a]] - math.Floor(xs[idx[a]])
		fb := xs[idx[b]] - math.Floor(xs[idx[b]])
		return fa > fb
	})

	for k := 0; k < d; k++ {
		ys[idx[k]]++
	}
	return ys
}
