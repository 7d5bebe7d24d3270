package interpolate

// Linspace returns n evenly spaced values from lo to hi, inclusive. The last
// value is exactly hi.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = lo
		return xs
	}

	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi
	return xs
}

// Sample evaluates the curve at resolution + 1 evenly spaced points across
// [lo, hi], giving a polyline approximation of the curve with resolution
// line segments. Resolutions below 1 are treated as 1.
func (cv *Curve) Sample(lo, hi float64, resolution int) (xs, ys []float64) {
	if resolution < 1 {
		resolution = 1
	}
	xs = Linspace(lo, hi, resolution+1)
	return xs, cv.EvalAll(xs)
}
