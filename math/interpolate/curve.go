package interpolate

// Curve is a piecewise polynomial fit through a set of knots. Curves are
// created by Build and are never modified afterwards, so a single Curve can be
// shared freely between goroutines.
type Curve struct {
	model  Model
	xs, ys []float64
	coeffs []segment

	// Control points are usually spread out evenly. This is our estimate of
	// the knot spacing.
	dx float64
}

// Eval computes the value of the curve at x. Eval never fails.
//
// Within the knot range the segment polynomial is used and every knot is hit
// exactly. Outside of it, Linear curves continue the slope of the first or
// last segment, while Quadratic and Cubic curves are clamped flat to the
// value of the nearest end knot.
func (cv *Curve) Eval(x float64) float64 {
	n := len(cv.xs)
	switch n {
	case 0:
		return 0
	case 1:
		return cv.ys[0]
	}

	if x < cv.xs[0] {
		if cv.model == Linear {
			return cv.coeffs[0].a + cv.coeffs[0].b*(x-cv.xs[0])
		}
		return cv.ys[0]
	} else if x > cv.xs[n-1] {
		if cv.model == Linear {
			return cv.ys[n-1] + cv.coeffs[n-2].b*(x-cv.xs[n-1])
		}
		return cv.ys[n-1]
	} else if x == cv.xs[n-1] {
		return cv.ys[n-1]
	}

	i := cv.bsearch(x)
	if x == cv.xs[i+1] {
		return cv.ys[i+1]
	}

	return cv.coeffs[i].eval(x-cv.xs[i], cv.model)
}

// EvalAll evaluates the curve at all the given x values. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
//
// If more than one output array is provided, only the first is used.
func (cv *Curve) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = cv.Eval(x)
	}
	return out[0]
}

// Diff computes the derivative of the curve at x to the specified order.
// Order 0 is the same as Eval.
//
// Outside the knot range the derivative follows Eval: Linear curves keep the
// slope of their end segments and clamped curves are flat.
func (cv *Curve) Diff(x float64, order int) float64 {
	if order <= 0 {
		return cv.Eval(x)
	}

	n := len(cv.xs)
	if n < 2 {
		return 0
	}

	if x < cv.xs[0] || x > cv.xs[n-1] {
		if cv.model != Linear || order > 1 {
			return 0
		} else if x < cv.xs[0] {
			return cv.coeffs[0].b
		}
		return cv.coeffs[n-2].b
	}

	i := cv.bsearch(x)
	dx := x - cv.xs[i]
	s := cv.coeffs[i]
	switch order {
	case 1:
		return s.b + 2*s.c*dx + 3*s.d*dx*dx
	case 2:
		return 2*s.c + 6*s.d*dx
	case 3:
		return 6 * s.d
	default:
		return 0
	}
}

// Model returns the model the curve was fit with.
func (cv *Curve) Model() Model { return cv.model }

// Segments returns the number of polynomial segments, one less than the number
// of knots.
func (cv *Curve) Segments() int { return len(cv.coeffs) }

// Knots returns a copy of the knots sorted by x.
func (cv *Curve) Knots() []Point {
	pts := make([]Point, len(cv.xs))
	for i := range pts {
		pts[i] = Point{cv.xs[i], cv.ys[i]}
	}
	return pts
}

// Domain returns the x values of the first and last knot.
func (cv *Curve) Domain() (lo, hi float64) {
	return cv.xs[0], cv.xs[len(cv.xs)-1]
}

// Coeffs returns the polynomial coefficients of segment i, which is written
// in terms of dx = x - Knots()[i].X.
func (cv *Curve) Coeffs(i int) (a, b, c, d float64) {
	s := cv.coeffs[i]
	return s.a, s.b, s.c, s.d
}

func (s segment) eval(dx float64, model Model) float64 {
	val := s.a + s.b*dx
	if model == Quadratic || model == Cubic {
		val += s.c * dx * dx
	}
	if model == Cubic {
		val += s.d * dx * dx * dx
	}
	return val
}

// bsearch returns the smallest segment index i with x <= xs[i+1]. A point
// which lands on an interior knot belongs to the segment on its left.
//
// x must be within the range of the knots.
func (cv *Curve) bsearch(x float64) int {
	n := len(cv.xs)

	// Guess under the assumption of uniform spacing.
	guess := int((x - cv.xs[0]) / cv.dx)
	if guess >= 0 && guess < n-1 &&
		cv.xs[guess] < x && x <= cv.xs[guess+1] {

		return guess
	}

	// Binary search.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x > cv.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
