// Package interp types: the spline order selector and the out-of-range
// extrapolation strategy.
package interp

// Type selects the interpolation scheme applied between table knots.
type Type int

const (
	// Linear connects consecutive knots with straight segments (order 1).
	Linear Type = iota

	// Quadratic uses quadratic spline segments (order 2) with a natural
	// boundary on the last interval.
	Quadratic

	// Cubic uses a natural cubic spline (order 3, C² continuous).
	Cubic

	// ConstantBackward holds the previous knot's value across each
	// interval (left-continuous step function).
	ConstantBackward

	// ConstantForward takes the next knot's value across each interval
	// (right-continuous step function).
	ConstantForward
)

// Extrapolation selects how At treats evaluation points outside the
// table's span.
type Extrapolation int

const (
	// ExtrapolateNone refuses out-of-range points: At returns
	// ErrOutOfRange.
	ExtrapolateNone Extrapolation = iota

	// ExtrapolateConstant clamps to the nearest table value: the first
	// y below the span, the last y above it.
	ExtrapolateConstant

	// ExtrapolateSpline extends the boundary spline segment beyond the
	// span, evaluating the same polynomial used for interpolation.
	ExtrapolateSpline
)
