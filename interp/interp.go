package interp

// Interpolator evaluates a piecewise curve built once from a table of
// (x, y) points. Spline coefficients are precomputed at construction,
// so At performs only a segment lookup and a polynomial evaluation.
// The zero value is not usable; construct with New.
//
// An Interpolator is immutable after construction and safe for
// concurrent reads.
type Interpolator struct {
	xs, ys  []float64
	b, c, d []float64
	typ     Type
	extrap  Extrapolation
}

// New builds an Interpolator over the given table.
//
// Preconditions and validation (in order):
//  1. xs and ys must have equal length with at least two points
//     (ErrBadInput).
//  2. xs must be strictly increasing (ErrUnsortedX).
//
// The input slices are copied; the caller may reuse its buffers.
//
// Complexity: O(n) time, O(n) space (natural cubic spline solved with
// a single tridiagonal sweep).
func New(xs, ys []float64, typ Type, extrap Extrapolation) (*Interpolator, error) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return nil, ErrBadInput
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrUnsortedX
		}
	}

	ip := &Interpolator{
		xs:     append([]float64(nil), xs...),
		ys:     append([]float64(nil), ys...),
		typ:    typ,
		extrap: extrap,
	}
	ip.b, ip.c, ip.d = splineCoefficients(ip.xs, ip.ys, typ)

	return ip, nil
}

// At evaluates the curve at x.
//
// Inside the table's span the segment bracketing x is evaluated. Out
// of range, the configured Extrapolation strategy decides: refuse
// (ErrOutOfRange), clamp to the nearest table value, or extend the
// boundary segment's polynomial.
func (ip *Interpolator) At(x float64) (float64, error) {
	for j := 0; j < len(ip.xs)-1; j++ {
		if ip.xs[j] <= x && x <= ip.xs[j+1] {
			switch ip.typ {
			case ConstantBackward:
				return ip.ys[j], nil
			case ConstantForward:
				return ip.ys[j+1], nil
			default:
				return ip.segment(j, x), nil
			}
		}
	}

	return ip.extrapolate(x)
}

// segment evaluates the polynomial of segment j at x.
func (ip *Interpolator) segment(j int, x float64) float64 {
	dx := x - ip.xs[j]

	return ip.ys[j] + ip.b[j]*dx + ip.c[j]*dx*dx + ip.d[j]*dx*dx*dx
}

func (ip *Interpolator) extrapolate(x float64) (float64, error) {
	first := ip.xs[0]
	switch ip.extrap {
	case ExtrapolateConstant:
		if x < first {
			return ip.ys[0], nil
		}

		return ip.ys[len(ip.ys)-1], nil

	case ExtrapolateSpline:
		j := len(ip.xs) - 2
		if x < first {
			j = 0
		}
		switch ip.typ {
		case ConstantBackward:
			return ip.ys[j], nil
		case ConstantForward:
			return ip.ys[j+1], nil
		default:
			return ip.segment(j, x), nil
		}

	default: // ExtrapolateNone
		return 0, ErrOutOfRange
	}
}

// splineCoefficients precomputes per-segment polynomial coefficients
// b, c, d so that segment j evaluates as
// y[j] + b[j]·dx + c[j]·dx² + d[j]·dx³ with dx = x − x[j].
//
// Linear: b holds the segment slopes. Quadratic: c captures the slope
// change over each interior interval, with a natural boundary on the
// last one. Cubic: natural cubic spline via the standard tridiagonal
// sweep (second derivative zero at both ends). Constant types need no
// coefficients.
func splineCoefficients(x, y []float64, typ Type) (b, c, d []float64) {
	if typ == ConstantBackward || typ == ConstantForward {
		return nil, nil, nil
	}

	n := len(x) - 1 // number of segments
	dx := make([]float64, n)
	dy := make([]float64, n)
	slopes := make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = x[i+1] - x[i]
		dy[i] = y[i+1] - y[i]
		slopes[i] = dy[i] / dx[i]
	}

	switch typ {
	case Linear:
		return slopes, make([]float64, n), make([]float64, n)

	case Quadratic:
		c = make([]float64, n)
		for i := 1; i < n-1; i++ {
			c[i] = (slopes[i] - slopes[i-1]) / (dx[i-1] * 2)
		}
		c[n-1] = 0 // natural boundary on the last interval

		return slopes, c, make([]float64, n)

	default: // Cubic
		alpha := make([]float64, n-1)
		for i := 1; i < n; i++ {
			alpha[i-1] = 3/dx[i]*(y[i+1]-y[i]) - 3/dx[i-1]*(y[i]-y[i-1])
		}

		b = make([]float64, n)
		c = make([]float64, n+1)
		d = make([]float64, n)
		l := make([]float64, n+1)
		mu := make([]float64, n)
		z := make([]float64, n+1)
		l[0] = 1

		for i := 1; i < n; i++ {
			l[i] = 2*(x[i+1]-x[i-1]) - dx[i-1]*mu[i-1]
			mu[i] = dx[i] / l[i]
			z[i] = (alpha[i-1] - dx[i-1]*z[i-1]) / l[i]
		}
		for j := n - 1; j >= 0; j-- {
			c[j] = z[j] - mu[j]*c[j+1]
			b[j] = dy[j]/dx[j] - dx[j]*(c[j+1]+2*c[j])/3
			d[j] = (c[j+1] - c[j]) / (3 * dx[j])
		}

		return b, c[:n], d
	}
}
