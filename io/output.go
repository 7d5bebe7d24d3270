package io

import (
	"bufio"
	"fmt"
	goio "io"
	"os"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

// WriteSamples writes a two column x y text table to w, preceded by a comment
// line describing the curve the samples were taken from.
func WriteSamples(
	w goio.Writer, cv *interpolate.Curve, xs, ys []float64,
) error {
	if len(xs) != len(ys) {
		return fmt.Errorf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# model=%s knots=%d\n", cv.Model(), cv.Segments()+1)
	for i := range xs {
		fmt.Fprintf(bw, "%.8g %.8g\n", xs[i], ys[i])
	}
	return bw.Flush()
}

// WriteSampleFile is WriteSamples for a named file. The name '-' writes to
// stdout.
func WriteSampleFile(
	fname string, cv *interpolate.Curve, xs, ys []float64,
) error {
	if fname == "-" {
		return WriteSamples(os.Stdout, cv, xs, ys)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	if err := WriteSamples(f, cv, xs, ys); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
