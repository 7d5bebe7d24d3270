package interpolate

import (
	"fmt"
	"sort"
)

// segment holds the coefficients of a + b*dx + c*dx^2 + d*dx^3 for a single
// knot interval.
type segment struct {
	a, b, c, d float64
}

// Build fits a curve of the given model through points. The points may be
// given in any order: a sorted copy is taken and points is never modified.
//
// Build returns ErrInsufficientPoints if fewer than two points are given,
// ErrDegenerateKnotSpacing if two points share an x value and
// ErrSingularSystem if the cubic fit cannot be solved. Errors are wrapped
// with details of the offending input, so use errors.Is to test for them.
func Build(points []Point, model Model) (*Curve, error) {
	if !model.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(model))
	} else if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(points))
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	n := len(sorted)
	cv := &Curve{
		model:  model,
		xs:     make([]float64, n),
		ys:     make([]float64, n),
		coeffs: make([]segment, n-1),
	}
	for i, p := range sorted {
		cv.xs[i], cv.ys[i] = p.X, p.Y
	}

	// h[i] is the width of segment i. The negated comparison also catches
	// NaN coordinates, which cannot be ordered.
	h := make([]float64, n-1)
	for i := range h {
		h[i] = cv.xs[i+1] - cv.xs[i]
		if !(h[i] > 0) {
			return nil, fmt.Errorf(
				"%w: knots %d and %d have x = %g and x = %g",
				ErrDegenerateKnotSpacing, i, i+1, cv.xs[i], cv.xs[i+1],
			)
		}
	}
	cv.dx = (cv.xs[n-1] - cv.xs[0]) / float64(n-1)

	for i := range cv.coeffs {
		cv.coeffs[i].a = cv.ys[i]
	}

	switch model {
	case Linear:
		cv.fitLinear(h)
	case Quadratic:
		cv.fitQuadratic(h)
	case Cubic:
		if err := cv.fitCubic(h); err != nil {
			return nil, err
		}
	}

	return cv, nil
}

// fitLinear connects consecutive knots with straight lines.
func (cv *Curve) fitLinear(h []float64) {
	ys := cv.ys
	for i := range cv.coeffs {
		cv.coeffs[i].b = (ys[i+1] - ys[i]) / h[i]
	}
}

// fitQuadratic fits a C^1 quadratic by marching from the left: the first
// segment is a straight secant and every later segment starts with the slope
// the previous one ended with, leaving its curvature free to hit the next
// knot. This is not a least squares fit and curvature can grow towards the
// right end of long tables.
func (cv *Curve) fitQuadratic(h []float64) {
	ys, cs := cv.ys, cv.coeffs

	cs[0].b = (ys[1] - ys[0]) / h[0]
	cs[0].c = 0

	for i := 0; i < len(cs)-1; i++ {
		cs[i+1].b = cs[i].b + 2*cs[i].c*h[i]
		cs[i+1].c = (ys[i+2] - ys[i+1] - cs[i+1].b*h[i+1]) / (h[i+1] * h[i+1])
	}
}

// fitCubic fits a natural cubic spline. The interior curvature terms are the
// solution of a tridiagonal system and the two boundary terms are zero.
func (cv *Curve) fitCubic(h []float64) error {
	xs, ys := cv.xs, cv.ys
	n := len(xs)

	// cInt[i] is half the second derivative at knot i.
	cInt := make([]float64, n)

	m := n - 2
	as, bs := make([]float64, m), make([]float64, m)
	cs, rs := make([]float64, m), make([]float64, m)
	for k := 0; k < m; k++ {
		// i indexes into xs and ys.
		i := k + 1

		as[k] = h[i-1]
		bs[k] = 2 * (xs[i+1] - xs[i-1])
		cs[k] = h[i]
		rs[k] = 3 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	if err := TriDiagAt(as, bs, cs, rs, cInt[1:n-1]); err != nil {
		return err
	}

	for j := n - 2; j >= 0; j-- {
		seg := &cv.coeffs[j]
		seg.b = (ys[j+1]-ys[j])/h[j] - h[j]*(cInt[j+1]+2*cInt[j])/3
		seg.c = cInt[j]
		seg.d = (cInt[j+1] - cInt[j]) / (3 * h[j])
	}

	return nil
}
