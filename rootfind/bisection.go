package rootfind

import "math"

// bisection narrows a bracket around the root.
//
// The update rule is an expand-then-halve discipline rather than
// textbook interval halving: when the two evaluated values share a
// sign, the right endpoint is pushed back out (x1 := 2·x1 − x0) and
// the left endpoint moves to the new midpoint, shifting the bracket
// right at constant width; when the signs differ, the bracket halves
// from the right. searchLeft records which half the last step
// explored, selecting which function value the stop test inspects.
type bisection struct {
	x0, x1     float64
	tolerance  float64
	searchLeft bool
}

// initialPoints immediately narrows the configured bracket by moving
// x1 to the midpoint of the original pair.
func (b *bisection) initialPoints() []float64 {
	b.x1 = (b.x0 + b.x1) / 2
	return []float64{b.x0, b.x1}
}

func (b *bisection) nextPoints(fx, _ []float64) []float64 {
	if fx[0]*fx[1] < 0 {
		// Sign change: continue within the left half (x0, mid).
		b.x1 = (b.x0 + b.x1) / 2
		b.searchLeft = true
	} else {
		// No sign change: expand back out on the right, then halve
		// from the left.
		b.x1 = b.x1*2 - b.x0
		b.x0 = (b.x0 + b.x1) / 2
		b.searchLeft = false
	}
	return []float64{b.x0, b.x1}
}

// shouldStop converges when the function value on the last explored
// side has magnitude below tolerance, or when the bracket width is
// below tolerance. The reported root is the current midpoint.
func (b *bisection) shouldStop(fx, _ []float64) (float64, bool, error) {
	fmid := fx[0]
	if b.searchLeft {
		fmid = fx[1]
	}
	mid := (b.x0 + b.x1) / 2
	if math.Abs(fmid) < b.tolerance || b.x1-b.x0 < b.tolerance {
		return mid, true, nil
	}
	return 0, false, nil
}
