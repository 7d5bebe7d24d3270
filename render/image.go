package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

const (
	curveWidth = 3
	knotRadius = 8
	// Fraction of the image left empty around the data on each side.
	imagePadding = 0.05
)

// frame maps data coordinates onto pixels, with y pointing up.
type frame struct {
	x0, y0, x1, y1 float64
	width, height  float64
}

func newFrame(width, height int, xs, ys []float64, knots []interpolate.Point) *frame {
	fr := &frame{
		x0: math.Inf(+1), y0: math.Inf(+1),
		x1: math.Inf(-1), y1: math.Inf(-1),
		width: float64(width), height: float64(height),
	}

	for i := range xs {
		fr.include(xs[i], ys[i])
	}
	for _, k := range knots {
		fr.include(k.X, k.Y)
	}

	// A flat curve or a single column still needs a non-empty range.
	if !(fr.x1 > fr.x0) {
		fr.x0, fr.x1 = fr.x0-1, fr.x1+1
	}
	if !(fr.y1 > fr.y0) {
		fr.y0, fr.y1 = fr.y0-1, fr.y1+1
	}

	dx, dy := (fr.x1-fr.x0)*imagePadding, (fr.y1-fr.y0)*imagePadding
	fr.x0, fr.x1 = fr.x0-dx, fr.x1+dx
	fr.y0, fr.y1 = fr.y0-dy, fr.y1+dy

	return fr
}

func (fr *frame) include(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	fr.x0, fr.x1 = math.Min(fr.x0, x), math.Max(fr.x1, x)
	fr.y0, fr.y1 = math.Min(fr.y0, y), math.Max(fr.y1, y)
}

// pixel returns the pixel coordinates of the data point (x, y).
func (fr *frame) pixel(x, y float64) (px, py float64) {
	px = (x - fr.x0) / (fr.x1 - fr.x0) * fr.width
	py = (1 - (y-fr.y0)/(fr.y1-fr.y0)) * fr.height
	return px, py
}

// Draw renders the polyline xs, ys and, if showKnots is set, the knots of cv
// onto a new width x height context. The caller is responsible for closing the
// returned context.
func Draw(
	width, height int, cv *interpolate.Curve, xs, ys []float64, showKnots bool,
) (*gg.Context, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		)
	}

	knots := cv.Knots()
	fr := newFrame(width, height, xs, ys, knots)

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.Hex(background))

	if len(xs) > 1 {
		dc.SetHexColor(curveColor)
		dc.SetLineWidth(curveWidth)
		dc.MoveTo(fr.pixel(xs[0], ys[0]))
		for i := 1; i < len(xs); i++ {
			dc.LineTo(fr.pixel(xs[i], ys[i]))
		}
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, err
		}
	}

	if showKnots {
		dc.SetHexColor(knotColor)
		for _, k := range knots {
			px, py := fr.pixel(k.X, k.Y)
			dc.DrawCircle(px, py, knotRadius)
		}
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, err
		}
	}

	if err := dc.FlushGPU(); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// Image renders the curve as with Draw and writes it to fname as a PNG.
func Image(
	fname string, width, height int,
	cv *interpolate.Curve, xs, ys []float64, showKnots bool,
) error {
	dc, err := Draw(width, height, cv, xs, ys, showKnots)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.SavePNG(fname)
}
