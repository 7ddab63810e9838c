package interp

import "errors"

var (
	// ErrBadInput indicates the x and y tables differ in length or hold
	// fewer than two points.
	ErrBadInput = errors.New("interp: x and y must have equal length and at least two points")

	// ErrUnsortedX indicates the x table is not strictly increasing.
	ErrUnsortedX = errors.New("interp: x values must be strictly increasing")

	// ErrOutOfRange indicates an evaluation point outside the table's
	// span while extrapolation is disabled (ExtrapolateNone).
	ErrOutOfRange = errors.New("interp: x outside the interpolation range and extrapolation is disabled")
)
