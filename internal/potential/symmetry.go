package potential

import "github.com/phbasler/BSMPT-sub002/internal/numeric"

// OptimalSymmetryImage applies every supplied symmetry element to
// trueVac and returns the image minimizing Euclidean distance to
// falseVac, breaking ties at the lowest index in ops (spec section
// 4.5/4.9: "choose the one minimizing the Euclidean distance...
// documented cases where multiple equidistant images exist must pick
// deterministically (lowest lexicographic index)"). If ops is empty,
// trueVac is returned unchanged.
func OptimalSymmetryImage(trueVac, falseVac numeric.Vec, ops []SymmetryOp) numeric.Vec {
	if len(ops) == 0 {
		return trueVac
	}
	best := ops[0].Apply(trueVac)
	bestDist := numeric.Distance(best, falseVac)
	for _, op := range ops[1:] {
		cand := op.Apply(trueVac)
		d := numeric.Distance(cand, falseVac)
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}
