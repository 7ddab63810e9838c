package rootfind

import (
	"fmt"
	"math"
)

// secant iterates two-point secant updates. x0 and x1 are the two most
// recent abscissas; x2 is the pending candidate carried so the stop
// test can report it once consecutive abscissas agree.
type secant struct {
	x0, x1, x2 float64
	tolerance  float64
}

func (s *secant) initialPoints() []float64 {
	return []float64{s.x0, s.x1}
}

// nextPoints computes x2 = x1 − f(x1)·(x1−x0)/(f(x1)−f(x0)) and shifts
// the abscissa pair forward.
func (s *secant) nextPoints(fx, _ []float64) []float64 {
	s.x2 = s.x1 - fx[1]*(s.x1-s.x0)/(fx[1]-fx[0])
	s.x0 = s.x1
	s.x1 = s.x2
	return []float64{s.x0, s.x1}
}

// shouldStop converges when the two most recent abscissas agree within
// tolerance, returning the pending candidate. A secant denominator
// below machine epsilon is a stall: the update cannot safely divide.
func (s *secant) shouldStop(fx, _ []float64) (float64, bool, error) {
	if math.Abs(s.x0-s.x1) < s.tolerance {
		return s.x2, true, nil
	}
	if math.Abs(fx[0]-fx[1]) < machineEpsilon {
		return 0, true, fmt.Errorf("%w: function values at the last two abscissas coincide", ErrNumericalStall)
	}
	return 0, false, nil
}
