package rootfind

import (
	"fmt"
	"math"
)

// newtonRaphson iterates x0 ← x0 − f(x0)/f'(x0) from a caller-supplied
// initial guess. The driver evaluates both f and f' each iteration and
// hands the pair to the strategy.
type newtonRaphson struct {
	x0        float64
	tolerance float64
}

func (n *newtonRaphson) initialPoints() []float64 {
	return []float64{n.x0}
}

func (n *newtonRaphson) nextPoints(fx, dfx []float64) []float64 {
	n.x0 -= fx[0] / dfx[0]
	return []float64{n.x0}
}

// shouldStop converges when the Newton candidate differs from the
// current abscissa by less than tolerance, returning the candidate.
// A derivative below machine epsilon is a stall, checked before the
// driver's budget check so the failure is never masked.
func (n *newtonRaphson) shouldStop(fx, dfx []float64) (float64, bool, error) {
	candidate := n.x0 - fx[0]/dfx[0]
	if math.Abs(n.x0-candidate) < n.tolerance {
		return candidate, true, nil
	}
	if math.Abs(dfx[0]) < machineEpsilon {
		return 0, true, fmt.Errorf("%w: derivative too close to zero", ErrNumericalStall)
	}
	return 0, false, nil
}
