package interp_test

import (
	"fmt"

	"github.com/katalvlaran/numerics/interp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew (linear)
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A small measurement table, evaluated between knots with straight
//	segments and clamped outside the span.
//
// ExampleNew demonstrates the build-once, evaluate-anywhere flow.
func ExampleNew() {
	ip, err := interp.New(
		[]float64{0, 1, 2, 3},
		[]float64{0, 2, 4, 6},
		interp.Linear,
		interp.ExtrapolateConstant,
	)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	inside, _ := ip.At(1.5)
	outside, _ := ip.At(10)
	fmt.Printf("at 1.5 = %.1f\nat 10  = %.1f\n", inside, outside)
	// Output:
	// at 1.5 = 3.0
	// at 10  = 6.0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew_cubic
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A natural cubic spline through samples of y = x³, with out-of-range
//	evaluation refused.
//
// ExampleNew_cubic demonstrates the strict ExtrapolateNone strategy.
func ExampleNew_cubic() {
	ip, err := interp.New(
		[]float64{0, 1, 2, 3},
		[]float64{0, 1, 8, 27},
		interp.Cubic,
		interp.ExtrapolateNone,
	)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	y, _ := ip.At(1.5)
	fmt.Printf("at 1.5 = %.2f\n", y)

	if _, err = ip.At(5); err != nil {
		fmt.Println(err)
	}
	// Output:
	// at 1.5 = 3.15
	// interp: x outside the interpolation range and extrapolation is disabled
}
