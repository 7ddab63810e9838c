// Package numerics is your toolbox for scalar numerical routines —
// finding zeros of real-valued functions and evaluating piecewise
// spline curves.
//
// 🚀 What is numerics?
//
//	A small, focused library that brings together:
//		• Root finding: Bisection, Secant, Newton-Raphson behind one
//		  iteration contract, plus a self-contained Brent solver
//		• Convergence diagnostics: a per-iteration trace of evaluated
//		  points and function values
//		• Interpolation: linear, quadratic and cubic splines with
//		  configurable extrapolation
//
// ✨ Why choose numerics?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Strict results – converged, stalled and exhausted-budget outcomes
//     are distinct, typed errors; never a silent best-effort value
//   - Pure Go – no cgo, no hidden deps
//   - Diagnosable – enable convergence logging and inspect every step
//
// Under the hood, everything is organized under two subpackages:
//
//	rootfind/ — solve f(x)=0 via Bisection, Secant, Newton-Raphson or Brent
//	interp/   — build an interpolator once, evaluate it anywhere
//
// Quick example:
//
//	f := func(x float64) float64 { return x*x*x - x - 2 }
//	finder, _ := rootfind.NewBuilder(rootfind.Brent).
//		Function(f).
//		Boundaries(1, 2).
//		Tolerance(1e-9).
//		MaxIterations(100).
//		Build()
//	root, _ := finder.FindRoot()
//
// Dive into each package's doc.go for the full contract, error
// taxonomy and worked examples.
//
//	go get github.com/katalvlaran/numerics
package numerics
