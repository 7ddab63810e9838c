// Package rootfind core types: the method selector, the function
// handle, the public RootFinder contract and the internal strategy
// contract shared by the driver-compatible algorithms.
package rootfind

// machineEpsilon is the spacing between 1.0 and the next larger
// float64. Denominators and derivatives below this magnitude signal a
// numerical stall.
const machineEpsilon = 0x1p-52

// Func is a scalar real-valued function f(x) or its derivative f'(x).
// The root finder borrows it for the duration of the search and never
// copies or retains it beyond the finder's own lifetime. It must be
// deterministic: repeated calls at the same argument must return the
// same value, or convergence detection and logging become meaningless.
type Func func(float64) float64

// Method selects the root-finding algorithm assembled by the Builder.
type Method int

const (
	// Bisection narrows a bracketing interval around the root.
	// Requires Boundaries.
	Bisection Method = iota

	// Brent combines inverse quadratic interpolation, secant steps and
	// bisection fallbacks. Requires Boundaries.
	Brent

	// Secant iterates two-point secant updates. Requires Boundaries.
	Secant

	// InverseQuadraticInterpolation is reserved: the variant is
	// declared but has no strategy, and Build always rejects it with
	// ErrUnsupportedMethod.
	InverseQuadraticInterpolation

	// NewtonRaphson iterates x − f(x)/f'(x). Requires InitialGuess and
	// Derivative.
	NewtonRaphson
)

// String returns the canonical method name, used to contextualize
// configuration errors.
func (m Method) String() string {
	switch m {
	case Bisection:
		return "Bisection"
	case Brent:
		return "Brent"
	case Secant:
		return "Secant"
	case InverseQuadraticInterpolation:
		return "InverseQuadraticInterpolation"
	case NewtonRaphson:
		return "NewtonRaphson"
	default:
		return "Unknown"
	}
}

// RootFinder is a ready-to-run root search assembled by Builder.Build.
//
// FindRoot runs the search to completion and returns the converged
// abscissa or a typed failure (ErrNumericalStall, ErrInvalidBracket,
// ErrMaxIterations). ConvergenceLog exposes the trace of the most
// recent search; it is empty when logging was disabled or no search
// has run.
//
// A RootFinder is single-use: FindRoot advances the strategy's
// internal state (bracket or guess) and the iteration counter, and
// neither is reset by a subsequent call. Only the convergence log
// resets per call.
type RootFinder interface {
	FindRoot() (float64, error)
	ConvergenceLog() *ConvergenceLog
}

// strategy is the uniform iteration contract implemented by the
// driver-compatible algorithms (bisection, secant, newtonRaphson).
// Brent stays outside this contract: its method switching and retained
// three-point history do not fit the evaluate/next/stop shape.
type strategy interface {
	// initialPoints produces the first abscissas to evaluate. Length
	// equals the strategy's arity: 1 for Newton-Raphson, 2 for
	// Bisection and Secant.
	initialPoints() []float64

	// nextPoints consumes f (and, when a derivative was supplied, f')
	// evaluated at the previous points and produces the next
	// abscissas, mutating internal state as a side effect.
	nextPoints(fx, dfx []float64) []float64

	// shouldStop inspects the current evaluations before the driver's
	// budget check. done=false means continue; done=true returns
	// either the converged root or a detected numerical failure.
	shouldStop(fx, dfx []float64) (root float64, done bool, err error)
}
