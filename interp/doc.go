// Package interp evaluates piecewise interpolating curves built once
// from a table of (x, y) points, with a configurable out-of-range
// extrapolation strategy.
//
// 🚀 What is interp?
//
//	Build an Interpolator from a sorted value table, then evaluate it
//	anywhere:
//	  • Linear           — straight segments between knots
//	  • Quadratic        — quadratic spline segments
//	  • Cubic            — natural cubic spline (C² continuous)
//	  • ConstantBackward — step function holding the previous value
//	  • ConstantForward  — step function taking the next value
//
// ✨ Key features:
//   - Coefficients precomputed at construction; At is evaluation only
//   - Three out-of-range strategies: refuse (ExtrapolateNone), clamp to
//     the nearest table value (ExtrapolateConstant), or extend the
//     boundary spline segment (ExtrapolateSpline)
//   - Strict validation up front: equal-length inputs, at least two
//     points, strictly increasing abscissas
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numerics/interp"
//
//	ip, err := interp.New(
//		[]float64{0, 1, 2, 3},
//		[]float64{0, 1, 8, 27},
//		interp.Cubic,
//		interp.ExtrapolateNone,
//	)
//	if err != nil {
//		// handle ErrBadInput / ErrUnsortedX
//	}
//	y, err := ip.At(1.5) // ErrOutOfRange when x is outside [0,3]
//
// Complexity:
//
//   - New: O(n) for Linear/Quadratic/Constant tables, O(n) for Cubic
//     (tridiagonal natural-spline solve)
//   - At:  O(n) segment scan (tables are typically small)
//
// The interpolator shares nothing with the rootfind engine; it is a
// standalone numeric utility consumed directly by callers.
package interp
