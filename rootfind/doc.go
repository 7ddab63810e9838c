// Package rootfind solves f(x) = 0 for scalar real-valued functions
// using interchangeable numerical strategies, with an optional
// per-iteration convergence trace.
//
// 🚀 What is rootfind?
//
//	One builder, four algorithms:
//	  • Bisection      — derivative-free, bracket-driven
//	  • Secant         — derivative-free, two-point updates
//	  • NewtonRaphson  — derivative-based, one-point updates
//	  • Brent          — hybrid inverse-quadratic / secant / bisection
//
// Bisection, Secant and Newton-Raphson share a uniform iteration
// contract (produce points → evaluate f → decide to stop → produce the
// next points) executed by a strategy-agnostic driver. Brent does not
// fit that contract — it retains a three-point history and switches
// methods mid-flight — so it runs its own self-contained loop behind
// the same RootFinder interface.
//
// ✨ Key guarantees:
//
//   - Construction is validated per method before f is ever evaluated:
//     Newton-Raphson needs an initial guess and a derivative;
//     Secant, Bisection and Brent need a bracketing interval.
//   - Outcomes are distinct, typed errors branched via errors.Is:
//     ErrNumericalStall (near-zero denominator or derivative),
//     ErrInvalidBracket (Brent precondition), ErrMaxIterations
//     (budget exhausted — always reported, never approximated).
//   - With LogConvergence(true), every iteration's evaluation points
//     and function values are recorded in a ConvergenceLog.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numerics/rootfind"
//
//	f := func(x float64) float64 { return x*x*x - x - 2 }
//	df := func(x float64) float64 { return 3*x*x - 1 }
//
//	finder, err := rootfind.NewBuilder(rootfind.NewtonRaphson).
//		Function(f).
//		Derivative(df).
//		InitialGuess(400).
//		Tolerance(1e-6).
//		MaxIterations(100).
//		LogConvergence(true).
//		Build()
//	if err != nil {
//		// handle configuration error
//	}
//	root, err := finder.FindRoot()
//
// A built RootFinder is single-use: FindRoot mutates strategy state
// in place and only the convergence log resets between calls. Build a
// fresh finder for each independent search.
//
// Concurrency: a RootFinder is not safe for concurrent use; every
// search is synchronous and single-threaded. The target function and
// derivative are assumed deterministic and side-effect-free.
package rootfind
