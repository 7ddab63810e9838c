package rootfind

import "math"

// brent implements Brent's method as a self-contained RootFinder. It
// deliberately bypasses the common strategy contract: each iteration
// operates on three abscissas a, b, c plus the step sizes d, e, and
// switches between inverse quadratic interpolation, secant steps and
// bisection fallbacks based on runtime conditions — state and control
// flow the uniform evaluate/next/stop shape cannot carry.
//
// Invariants maintained across iterations:
//
//	b — the best current approximation to the root
//	a — the previous approximation, with |f(b)| ≤ |f(a)|
//	c — the most recent abscissa on the opposite side of the root
type brent struct {
	x0, x1    float64
	tolerance float64

	fn             Func
	maxIterations  int
	logConvergence bool
	log            ConvergenceLog
}

// FindRoot runs Brent's method over the configured bracket.
//
// Preconditions: f(x0) and f(x1) must have opposite signs; otherwise
// FindRoot fails with ErrInvalidBracket before any iteration. Per
// iteration the candidate s comes from inverse quadratic interpolation
// when f(a), f(b), f(c) are pairwise distinct, else from the secant
// formula; s is accepted only when it lies strictly between (3a+b)/4
// and b and the previous step was not already below tolerance, falling
// back to the bisection midpoint otherwise. Convergence: |s−b| or
// |f(b)| below tolerance. ErrMaxIterations once the budget runs out.
func (br *brent) FindRoot() (float64, error) {
	br.log.Reset()
	a, b := br.x0, br.x1
	fa, fb := br.fn(a), br.fn(b)
	if br.logConvergence {
		br.log.Add(1, []float64{a, b}, []float64{fa, fb})
	}

	if fa*fb > 0 {
		return 0, ErrInvalidBracket
	}

	// Keep b the best guess.
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c, fc := a, fa
	s := b
	d := b - a
	e := d

	for i := 1; i < br.maxIterations; i++ {
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation through (a,fa), (b,fb), (c,fc).
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step.
			s = b - fb*(b-a)/(fb-fa)
		}

		if !((3*a+b)/4 < s && s < b) ||
			math.Abs(e) < br.tolerance || math.Abs(s-b) < br.tolerance {
			// Fall back to bisection and reset the step bookkeeping.
			s = (a + b) / 2
			e = d
			d = b - a
		} else {
			d = e
			e = b - a
		}

		a, fa = b, fb
		if math.Abs(s-b) < br.tolerance || math.Abs(fb) < br.tolerance {
			return s, nil
		}

		b = s
		fb = br.fn(s)
		if br.logConvergence {
			br.log.Add(i+1, []float64{s}, []float64{fb})
		}
		// Track the most recent sign change.
		if fa*fb < 0 {
			c, fc = a, fa
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	return 0, ErrMaxIterations
}

// ConvergenceLog returns the trace accumulated by the most recent
// FindRoot call. Entry 1 is the initial bracket evaluation; subsequent
// entries hold the single candidate evaluated each iteration.
func (br *brent) ConvergenceLog() *ConvergenceLog {
	return &br.log
}
