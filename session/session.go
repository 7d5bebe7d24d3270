/*package session holds the state an interactive curve editor keeps between
frames: the control points in the order they were placed, the selected
model, the point being dragged and the curve fit through the points.

The editor owns its Session and drives it from its event loop. Every change to
the points or the model refits the curve from scratch, so the Curve returned
to the renderer always matches the current points. A Session is not safe for
concurrent use.
*/
package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

const (
	// GrabRadius is how close a click needs to be to an existing point to
	// start dragging it instead of placing a new point.
	GrabRadius = 15.0
	// DefaultResolution is the number of line segments used to draw a curve.
	DefaultResolution = 400
)

// ErrNotDragging is returned by Drag when no point has been grabbed.
var ErrNotDragging = errors.New("session: no point is being dragged")

// DefaultPoints returns the points a new editor starts with.
func DefaultPoints() []interpolate.Point {
	return []interpolate.Point{
		{X: -300, Y: 0},
		{X: -150, Y: 100},
		{X: 0, Y: -100},
		{X: 150, Y: 100},
		{X: 300, Y: 0},
	}
}

type polyline struct {
	xs, ys []float64
}

// Session is the editor state.
type Session struct {
	logger l.Wrapper

	points   []interpolate.Point
	model    interpolate.Model
	dragging int
	showPts  bool

	curve     *interpolate.Curve
	polylines *cache.Cache
}

// New creates a Session with the given model and initial points. A nil logger
// discards all log output.
func New(
	model interpolate.Model, logger l.Wrapper, points ...interpolate.Point,
) *Session {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	s := &Session{
		logger:    logger.WithFields(l.StringField(l.ClsKey, "Session")),
		points:    append([]interpolate.Point{}, points...),
		model:     model,
		dragging:  -1,
		showPts:   true,
		polylines: cache.New(cache.NoExpiration, 0),
	}
	s.rebuild()

	return s
}

// Points returns a copy of the control points in the order they were placed.
func (s *Session) Points() []interpolate.Point {
	return append([]interpolate.Point{}, s.points...)
}

// Model returns the selected model.
func (s *Session) Model() interpolate.Model { return s.model }

// SetModel selects a new model and refits the curve.
func (s *Session) SetModel(model interpolate.Model) error {
	if !model.Valid() {
		return fmt.Errorf("%w: %d", interpolate.ErrUnknownModel, int(model))
	}
	if model == s.model {
		return nil
	}

	s.model = model
	s.rebuild()
	return nil
}

// Click handles a press at p. If p is within GrabRadius of an existing point,
// the first such point is grabbed for dragging and its index is returned with
// grabbed set to true. Otherwise p is appended as a new point.
//
// A new point which shares its x value with an existing point would make the
// curve undefined, so it is rejected with an error wrapping
// interpolate.ErrDegenerateKnotSpacing and the session is left unchanged.
func (s *Session) Click(p interpolate.Point) (idx int, grabbed bool, err error) {
	for i, q := range s.points {
		if math.Hypot(q.X-p.X, q.Y-p.Y) < GrabRadius {
			s.dragging = i
			return i, true, nil
		}
	}

	if j, ok := s.sharedX(p.X, -1); ok {
		err = fmt.Errorf(
			"%w: new point (%g, %g) has the same x as point %d",
			interpolate.ErrDegenerateKnotSpacing, p.X, p.Y, j,
		)
		s.logger.WithFields(l.ErrorField(err)).Error("click rejected")
		return -1, false, err
	}

	s.points = append(s.points, p)
	s.rebuild()
	return len(s.points) - 1, false, nil
}

// Drag moves the grabbed point to p. Moves onto the x value of another point
// are rejected in the same way as in Click, leaving the point where it was.
func (s *Session) Drag(p interpolate.Point) error {
	if s.dragging < 0 {
		return ErrNotDragging
	}

	if j, ok := s.sharedX(p.X, s.dragging); ok {
		err := fmt.Errorf(
			"%w: point %d moved to (%g, %g) has the same x as point %d",
			interpolate.ErrDegenerateKnotSpacing, s.dragging, p.X, p.Y, j,
		)
		s.logger.WithFields(l.ErrorField(err),
			l.IntField("index", s.dragging)).Error("drag rejected")
		return err
	}

	s.points[s.dragging] = p
	s.rebuild()
	return nil
}

// Release ends a drag.
func (s *Session) Release() { s.dragging = -1 }

// Dragging returns the index of the grabbed point, if there is one.
func (s *Session) Dragging() (int, bool) {
	return s.dragging, s.dragging >= 0
}

// Reset restores DefaultPoints.
func (s *Session) Reset() {
	s.points = DefaultPoints()
	s.dragging = -1
	s.rebuild()
}

// Clear removes every point.
func (s *Session) Clear() {
	s.points = s.points[:0]
	s.dragging = -1
	s.rebuild()
}

// ToggleControlPoints flips whether the editor draws the control points.
func (s *Session) ToggleControlPoints() { s.showPts = !s.showPts }

// ShowControlPoints returns whether the editor should draw the control points.
func (s *Session) ShowControlPoints() bool { return s.showPts }

// Curve returns the curve through the current points. ok is false while there
// are fewer than two points.
func (s *Session) Curve() (cv *interpolate.Curve, ok bool) {
	return s.curve, s.curve != nil
}

// Polyline samples the current curve across the x range of the control points
// with the given number of line segments. Results are reused until the points
// or the model change, and must not be modified by the caller. Both slices are
// nil when there is no curve.
func (s *Session) Polyline(resolution int) (xs, ys []float64) {
	if s.curve == nil {
		return nil, nil
	}

	key := strconv.Itoa(resolution)
	if v, ok := s.polylines.Get(key); ok {
		pl := v.(polyline)
		return pl.xs, pl.ys
	}

	lo, hi := s.curve.Domain()
	xs, ys = s.curve.Sample(lo, hi, resolution)
	s.polylines.Set(key, polyline{xs, ys}, cache.NoExpiration)
	return xs, ys
}

// sharedX returns the index of a point other than skip with the given x.
func (s *Session) sharedX(x float64, skip int) (int, bool) {
	for i, q := range s.points {
		if i != skip && q.X == x {
			return i, true
		}
	}
	return -1, false
}

func (s *Session) rebuild() {
	s.polylines.Flush()

	if len(s.points) < 2 {
		s.curve = nil
		return
	}

	cv, err := interpolate.Build(s.points, s.model)
	if err != nil {
		// Duplicate x values are filtered out above, so this only happens
		// for NaN input or a singular cubic system.
		s.logger.WithFields(l.ErrorField(err),
			l.StringField("model", s.model.String()),
			l.IntField("points", len(s.points))).Error("curve fit failed")
		s.curve = nil
		return
	}

	s.curve = cv
	s.logger.WithFields(l.StringField("model", s.model.String()),
		l.IntField("points", len(s.points))).Debug("curve rebuilt")
}
