/*package interpolate fits piecewise polynomial curves through unordered sets
of 2-D control points and evaluates them at arbitrary x values.

Three models are supported: piecewise-linear, a C^1 piecewise-quadratic and
the natural cubic spline. All of them are fit with Build and share a single
Curve representation, one cubic polynomial per segment with the unused higher
order terms set to zero.
*/
package interpolate

// Interpolator is a one dimensional function which has been fit to a table of
// values.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Curve{}
)
