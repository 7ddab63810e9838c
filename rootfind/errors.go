// errors.go — sentinel errors for the rootfind package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping, never by
//     stringifying parameters into the sentinel itself.
//   - Configuration errors are raised at Build time, before the target
//     function is evaluated; all other sentinels are FindRoot outcomes.

package rootfind

import "errors"

// ErrMissingFunction indicates no target function was supplied.
// Usage: if errors.Is(err, ErrMissingFunction) { /* set Function */ }.
var ErrMissingFunction = errors.New("rootfind: target function must be specified")

// ErrInvalidTolerance indicates the tolerance was omitted or not
// strictly positive.
var ErrInvalidTolerance = errors.New("rootfind: tolerance must be positive")

// ErrInvalidMaxIterations indicates the iteration cap was omitted or
// not strictly positive.
var ErrInvalidMaxIterations = errors.New("rootfind: max iterations must be positive")

// ErrMissingDerivative indicates the selected method requires f' but
// none was supplied (Newton-Raphson).
var ErrMissingDerivative = errors.New("rootfind: derivative must be specified")

// ErrMissingInitialGuess indicates the selected method requires a
// starting abscissa but none was supplied (Newton-Raphson).
var ErrMissingInitialGuess = errors.New("rootfind: initial guess must be specified")

// ErrMissingBoundaries indicates the selected method requires a
// bracketing interval but none was supplied (Bisection, Secant, Brent).
var ErrMissingBoundaries = errors.New("rootfind: boundaries must be specified")

// ErrUnsupportedMethod indicates the selected Method has no strategy
// (InverseQuadraticInterpolation, or an out-of-range selector).
var ErrUnsupportedMethod = errors.New("rootfind: unsupported root-finding method")

// ErrInvalidBracket indicates Brent's precondition failed: the function
// values at the two bracket endpoints share a sign, so no root is
// guaranteed inside the interval. No iteration is attempted.
var ErrInvalidBracket = errors.New("rootfind: f(x0) and f(x1) must have opposite signs")

// ErrNumericalStall indicates a denominator (derivative, or difference
// of function values) fell below machine epsilon and the method cannot
// safely continue. Distinct from ErrMaxIterations.
// Usage: if errors.Is(err, ErrNumericalStall) { /* pick another method */ }.
var ErrNumericalStall = errors.New("rootfind: denominator too close to zero")

// ErrMaxIterations indicates the configured iteration budget was
// exhausted without satisfying any stop condition. This is the
// steady-state non-convergence outcome: it is always reported, never
// downgraded to a best-effort value.
var ErrMaxIterations = errors.New("rootfind: maximum iterations reached without convergence")
