// builder.go — two-phase configuration for the rootfind package.
//
// Contract (strict):
//   - Phase one populates optional fields through fluent setters; no
//     validation happens there.
//   - Phase two, Build, validates the accumulated configuration against
//     the selected Method and assembles a ready RootFinder.
//   - Build NEVER evaluates the target function; evaluation begins only
//     once FindRoot is invoked on the returned finder.

package rootfind

import (
	"fmt"
	"math"
)

// Builder accumulates a root-finder configuration and validates it
// against the selected method in a single Build step.
//
// Required for every method: Function, Tolerance (> 0), MaxIterations
// (> 0). Per method: NewtonRaphson additionally requires Derivative
// and InitialGuess; Bisection, Secant and Brent require Boundaries.
// LogConvergence defaults to disabled.
type Builder struct {
	method Method

	fn    Func
	deriv Func

	guess    float64
	hasGuess bool

	x0, x1    float64
	hasBounds bool

	tolerance      float64
	maxIterations  int
	logConvergence bool
}

// NewBuilder creates a Builder for the given method with every
// optional field unset.
func NewBuilder(method Method) *Builder {
	return &Builder{method: method}
}

// Function sets the target function f(x). Required for every method.
func (b *Builder) Function(fn Func) *Builder {
	b.fn = fn
	return b
}

// Derivative sets f'(x), required for Newton-Raphson. Derivatives are
// supplied by the caller as ordinary functions; no differentiation is
// performed here.
func (b *Builder) Derivative(deriv Func) *Builder {
	b.deriv = deriv
	return b
}

// InitialGuess sets the starting abscissa for methods that need one
// (Newton-Raphson).
func (b *Builder) InitialGuess(guess float64) *Builder {
	b.guess = guess
	b.hasGuess = true
	return b
}

// Boundaries sets the bracketing interval (x0, x1) for methods that
// need one (Bisection, Secant, Brent).
func (b *Builder) Boundaries(x0, x1 float64) *Builder {
	b.x0, b.x1 = x0, x1
	b.hasBounds = true
	return b
}

// Tolerance sets the convergence threshold on argument change and/or
// residual magnitude. Must be strictly positive.
func (b *Builder) Tolerance(tol float64) *Builder {
	b.tolerance = tol
	return b
}

// MaxIterations sets the iteration budget. Must be strictly positive;
// exceeding it is always reported as ErrMaxIterations.
func (b *Builder) MaxIterations(n int) *Builder {
	b.maxIterations = n
	return b
}

// LogConvergence enables or disables recording of per-iteration
// evaluation points and function values. Disabled by default.
func (b *Builder) LogConvergence(log bool) *Builder {
	b.logConvergence = log
	return b
}

// Build validates the configuration and assembles the RootFinder.
//
// Validation order:
//  1. Function must be set (ErrMissingFunction).
//  2. Tolerance must be positive (ErrInvalidTolerance).
//  3. MaxIterations must be positive (ErrInvalidMaxIterations).
//  4. Method-specific requirements (ErrMissingDerivative,
//     ErrMissingInitialGuess, ErrMissingBoundaries).
//  5. Reserved or unknown methods fail with ErrUnsupportedMethod.
//
// The target function is not called during Build.
func (b *Builder) Build() (RootFinder, error) {
	if b.fn == nil {
		return nil, ErrMissingFunction
	}
	if b.tolerance <= 0 {
		return nil, ErrInvalidTolerance
	}
	if b.maxIterations <= 0 {
		return nil, ErrInvalidMaxIterations
	}

	switch b.method {
	case NewtonRaphson:
		if b.deriv == nil {
			return nil, fmt.Errorf("%w: required by %s", ErrMissingDerivative, b.method)
		}
		if !b.hasGuess {
			return nil, fmt.Errorf("%w: required by %s", ErrMissingInitialGuess, b.method)
		}
		finder := &newtonRaphson{x0: b.guess, tolerance: b.tolerance}
		return newIterator(b.fn, b.deriv, finder, b.maxIterations, b.logConvergence), nil

	case Secant:
		if !b.hasBounds {
			return nil, fmt.Errorf("%w: required by %s", ErrMissingBoundaries, b.method)
		}
		finder := &secant{x0: b.x0, x1: b.x1, x2: math.NaN(), tolerance: b.tolerance}
		return newIterator(b.fn, nil, finder, b.maxIterations, b.logConvergence), nil

	case Bisection:
		if !b.hasBounds {
			return nil, fmt.Errorf("%w: required by %s", ErrMissingBoundaries, b.method)
		}
		finder := &bisection{x0: b.x0, x1: b.x1, tolerance: b.tolerance}
		return newIterator(b.fn, nil, finder, b.maxIterations, b.logConvergence), nil

	case Brent:
		if !b.hasBounds {
			return nil, fmt.Errorf("%w: required by %s", ErrMissingBoundaries, b.method)
		}
		return &brent{
			x0:             b.x0,
			x1:             b.x1,
			tolerance:      b.tolerance,
			fn:             b.fn,
			maxIterations:  b.maxIterations,
			logConvergence: b.logConvergence,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, b.method)
	}
}
