// Package Experiments drives head-to-head workloads between the balanced
// and unbalanced trees, collecting heights, comparison counts, rotation
// counts and wall time per dataset shape.
package Experiments

import (
	"fmt"
	"math/rand"
)

// Pattern names a dataset shape. The values double as the yaml spelling.
type Pattern string

const (
	Random        Pattern = "random"
	Sorted        Pattern = "sorted"
	ReverseSorted Pattern = "reverse"
	NearlySorted  Pattern = "nearly-sorted"
)

// AllPatterns in the order experiments run them.
var AllPatterns = []Pattern{Random, Sorted, ReverseSorted, NearlySorted}

// Random keys are drawn from [0,keyRange) so that duplicates occur, the way
// real key streams do.
const keyRange = 10000

// Generate produces a dataset of n keys shaped by p. sortedFraction only
// applies to NearlySorted: it is the fraction of the data left in place,
// the rest is disturbed by random pair swaps.
// Time: O(N); Space: O(N)
func Generate(p Pattern, n int, sortedFraction float64, r *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Experiments: negative dataset size %d", n)
	}
	a := make([]int, n)
	switch p {
	case Random:
		for i := range a {
			a[i] = r.Intn(keyRange)
		}
	case Sorted:
		for i := range a {
			a[i] = i + 1
		}
	case ReverseSorted:
		for i := range a {
			a[i] = n - i
		}
	case NearlySorted:
		if sortedFraction < 0 || sortedFraction > 1 {
			return nil, fmt.Errorf("Experiments: sorted fraction %v outside [0,1]", sortedFraction)
		}
		for i := range a {
			a[i] = i + 1
		}
		swaps := int(float64(n) * (1 - sortedFraction))
		for range swaps {
			i, j := r.Intn(n), r.Intn(n)
			a[i], a[j] = a[j], a[i]
		}
	default:
		return nil, fmt.Errorf("Experiments: unknown pattern %q", p)
	}
	return a, nil
}
