/*package render draws sampled curves, either as a matplotlib figure or as a
PNG rasterised in-process.
*/
package render

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

const (
	curveColor = "#00FFAA"
	knotColor  = "#FFFFFF"
	background = "#123456"
)

// Plot queues a matplotlib figure showing the knots of cv and the polyline
// xs, ys, saved to fname. Nothing is drawn until plt.Execute is called, so
// several figures can be batched into a single python run.
func Plot(fname string, cv *interpolate.Curve, xs, ys []float64) {
	knots := cv.Knots()
	kxs, kys := make([]float64, len(knots)), make([]float64, len(knots))
	for i, k := range knots {
		kxs[i], kys[i] = k.X, k.Y
	}

	plt.Figure(plt.FigSize(8, 6))
	plt.Plot(xs, ys, plt.LW(3), plt.C(curveColor))
	plt.Plot(kxs, kys, "ok")

	plt.Title(fmt.Sprintf("%s interpolation through %d points",
		cv.Model(), len(knots)))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	if len(xs) > 1 {
		plt.XLim(xs[0], xs[len(xs)-1])
	}
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
}
