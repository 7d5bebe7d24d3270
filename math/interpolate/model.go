package interpolate

import (
	"fmt"
	"strings"
)

// Point is a single 2-D control point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Model selects the polynomial family a Curve is fit with.
type Model int

const (
	Linear Model = iota
	Quadratic
	Cubic
)

// Models lists every supported model in key binding order.
var Models = []Model{Linear, Quadratic, Cubic}

func (m Model) String() string {
	switch m {
	case Linear:
		return "Linear"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// Valid returns true if m is one of the supported models.
func (m Model) Valid() bool { return m >= Linear && m <= Cubic }

// Degree returns the degree of the polynomial used on each segment.
func (m Model) Degree() int { return int(m) + 1 }

// ParseModel converts a model name into a Model. Names are case insensitive
// and the key bindings "1", "2" and "3" are accepted as well.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "1":
		return Linear, nil
	case "quadratic", "2":
		return Quadratic, nil
	case "cubic", "natural", "3":
		return Cubic, nil
	}
	return 0, fmt.Errorf("%w: '%s' is not one of [Linear | Quadratic | Cubic]",
		ErrUnknownModel, s)
}
