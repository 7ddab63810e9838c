package rootfind_test

import (
	"testing"

	"github.com/katalvlaran/numerics/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFunc wraps f and counts invocations, so tests can prove that
// Build never evaluates the target function.
func countingFunc(f func(float64) float64, calls *int) rootfind.Func {
	return func(x float64) float64 {
		*calls++

		return f(x)
	}
}

func cube(x float64) float64 { return x*x*x - x - 2 }

func cubeDeriv(x float64) float64 { return 3*x*x - 1 }

// TestBuild_MissingFunction verifies that every build fails without a
// target function.
func TestBuild_MissingFunction(t *testing.T) {
	_, err := rootfind.NewBuilder(rootfind.Secant).
		Boundaries(0, 1).
		Tolerance(1e-6).
		MaxIterations(10).
		Build()
	assert.ErrorIs(t, err, rootfind.ErrMissingFunction, "build without Function must fail")
}

// TestBuild_InvalidTolerance verifies that an omitted or non-positive
// tolerance is rejected.
func TestBuild_InvalidTolerance(t *testing.T) {
	_, err := rootfind.NewBuilder(rootfind.Secant).
		Function(cube).
		Boundaries(0, 1).
		MaxIterations(10).
		Build()
	assert.ErrorIs(t, err, rootfind.ErrInvalidTolerance, "omitted tolerance must fail")

	_, err = rootfind.NewBuilder(rootfind.Secant).
		Function(cube).
		Boundaries(0, 1).
		Tolerance(-1e-6).
		MaxIterations(10).
		Build()
	assert.ErrorIs(t, err, rootfind.ErrInvalidTolerance, "negative tolerance must fail")
}

// TestBuild_InvalidMaxIterations verifies that an omitted or
// non-positive iteration budget is rejected.
func TestBuild_InvalidMaxIterations(t *testing.T) {
	_, err := rootfind.NewBuilder(rootfind.Secant).
		Function(cube).
		Boundaries(0, 1).
		Tolerance(1e-6).
		Build()
	assert.ErrorIs(t, err, rootfind.ErrInvalidMaxIterations, "omitted max iterations must fail")
}

// TestBuild_NewtonRaphsonRequirements verifies the per-method rules:
// Newton-Raphson needs both a derivative and an initial guess, and the
// target function is never evaluated during a failed build.
func TestBuild_NewtonRaphsonRequirements(t *testing.T) {
	var calls int
	f := countingFunc(cube, &calls)

	_, err := rootfind.NewBuilder(rootfind.NewtonRaphson).
		Function(f).
		InitialGuess(1).
		Tolerance(1e-6).
		MaxIterations(10).
		Build()
	assert.ErrorIs(t, err, rootfind.ErrMissingDerivative, "NewtonRaphson without Derivative must fail")

	_, err = rootfind.NewBuilder(rootfind.NewtonRaphson).
		Function(f).
		Derivative(cubeDeriv).
		Tolerance(1e-6).
		MaxIterations(10).
		Build()
	assert.ErrorIs(t, err, rootfind.ErrMissingInitialGuess, "NewtonRaphson without InitialGuess must fail")

	assert.Zero(t, calls, "Build must never evaluate the target function")
}

// TestBuild_BoundariesRequired verifies that Bisection, Secant and
// Brent all reject a configuration without a bracketing interval,
// without evaluating f.
func TestBuild_BoundariesRequired(t *testing.T) {
	var calls int
	f := countingFunc(cube, &calls)

	for _, method := range []rootfind.Method{rootfind.Bisection, rootfind.Secant, rootfind.Brent} {
		_, err := rootfind.NewBuilder(method).
			Function(f).
			Tolerance(1e-6).
			MaxIterations(10).
			Build()
		assert.ErrorIs(t, err, rootfind.ErrMissingBoundaries, "%s without Boundaries must fail", method)
	}

	assert.Zero(t, calls, "Build must never evaluate the target function")
}

// TestBuild_UnsupportedMethod verifies that the reserved
// InverseQuadraticInterpolation selector is rejected.
func TestBuild_UnsupportedMethod(t *testing.T) {
	_, err := rootfind.NewBuilder(rootfind.InverseQuadraticInterpolation).
		Function(cube).
		Boundaries(0, 1).
		Tolerance(1e-6).
		MaxIterations(10).
		Build()
	assert.ErrorIs(t, err, rootfind.ErrUnsupportedMethod, "reserved method must be rejected at build time")
}

// TestBuild_ConstructionIsLazy verifies that a fully valid build still
// performs zero function evaluations; evaluation begins at FindRoot.
func TestBuild_ConstructionIsLazy(t *testing.T) {
	var calls, derivCalls int
	f := countingFunc(cube, &calls)
	df := countingFunc(cubeDeriv, &derivCalls)

	finder, err := rootfind.NewBuilder(rootfind.NewtonRaphson).
		Function(f).
		Derivative(df).
		InitialGuess(2).
		Tolerance(1e-6).
		MaxIterations(50).
		Build()
	require.NoError(t, err, "valid NewtonRaphson configuration must build")
	require.NotNil(t, finder)
	assert.Zero(t, calls, "Build must not evaluate f")
	assert.Zero(t, derivCalls, "Build must not evaluate f'")

	_, err = finder.FindRoot()
	require.NoError(t, err)
	assert.Positive(t, calls, "FindRoot must evaluate f")
	assert.Positive(t, derivCalls, "FindRoot must evaluate f'")
}

// TestMethod_String covers the canonical method names used in error
// context.
func TestMethod_String(t *testing.T) {
	assert.Equal(t, "Bisection", rootfind.Bisection.String())
	assert.Equal(t, "Brent", rootfind.Brent.String())
	assert.Equal(t, "Secant", rootfind.Secant.String())
	assert.Equal(t, "NewtonRaphson", rootfind.NewtonRaphson.String())
	assert.Equal(t, "InverseQuadraticInterpolation", rootfind.InverseQuadraticInterpolation.String())
	assert.Equal(t, "Unknown", rootfind.Method(42).String())
}
