package session

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

func newDefault() *Session {
	return New(interpolate.Cubic, l.NewConsoleLoggerWrapper(), DefaultPoints()...)
}

func TestNewBuildsCurve(t *testing.T) {
	s := newDefault()
	cv, ok := s.Curve()
	require.True(t, ok)
	assert.Equal(t, interpolate.Cubic, cv.Model())
	assert.Equal(t, -100.0, cv.Eval(0))
	assert.True(t, s.ShowControlPoints())

	empty := New(interpolate.Linear, nil)
	_, ok = empty.Curve()
	assert.False(t, ok)
	xs, ys := empty.Polyline(DefaultResolution)
	assert.Nil(t, xs)
	assert.Nil(t, ys)
}

func TestClickAddsPoint(t *testing.T) {
	s := New(interpolate.Linear, nil)

	idx, grabbed, err := s.Click(interpolate.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.False(t, grabbed)
	_, ok := s.Curve()
	assert.False(t, ok, "one point is not enough for a curve")

	idx, grabbed, err = s.Click(interpolate.Pt(100, 50))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.False(t, grabbed)

	cv, ok := s.Curve()
	require.True(t, ok)
	assert.InDelta(t, 25.0, cv.Eval(50), 1e-12)
}

func TestClickGrabsNearbyPoint(t *testing.T) {
	s := newDefault()

	idx, grabbed, err := s.Click(interpolate.Pt(-145, 95))
	require.NoError(t, err)
	assert.True(t, grabbed)
	assert.Equal(t, 1, idx)

	i, ok := s.Dragging()
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Len(t, s.Points(), 5)

	// Just outside the grab radius places a new point instead.
	s.Release()
	_, grabbed, err = s.Click(interpolate.Pt(-150+GrabRadius, 100))
	require.NoError(t, err)
	assert.False(t, grabbed)
	assert.Len(t, s.Points(), 6)
}

func TestClickRejectsSharedX(t *testing.T) {
	s := newDefault()
	before, _ := s.Curve()

	_, _, err := s.Click(interpolate.Pt(150, -200))
	assert.True(t, errors.Is(err, interpolate.ErrDegenerateKnotSpacing))
	assert.Equal(t, DefaultPoints(), s.Points())

	after, _ := s.Curve()
	assert.Same(t, before, after, "rejected clicks do not refit")
}

func TestDrag(t *testing.T) {
	s := newDefault()

	assert.True(t, errors.Is(s.Drag(interpolate.Pt(1, 1)), ErrNotDragging))

	_, grabbed, err := s.Click(interpolate.Pt(0, -100))
	require.NoError(t, err)
	require.True(t, grabbed)

	require.NoError(t, s.Drag(interpolate.Pt(10, 40)))
	assert.Equal(t, interpolate.Pt(10, 40), s.Points()[2])
	cv, _ := s.Curve()
	assert.Equal(t, 40.0, cv.Eval(10))

	// Dragging onto another point's x is refused.
	err = s.Drag(interpolate.Pt(-150, 0))
	assert.True(t, errors.Is(err, interpolate.ErrDegenerateKnotSpacing))
	assert.Equal(t, interpolate.Pt(10, 40), s.Points()[2])

	// Dragging past neighbours reorders the knots but not the points.
	require.NoError(t, s.Drag(interpolate.Pt(200, 0)))
	assert.Equal(t, interpolate.Pt(200, 0), s.Points()[2])
	cv, _ = s.Curve()
	assert.Equal(t, interpolate.Pt(200, 0), cv.Knots()[3])

	s.Release()
	_, ok := s.Dragging()
	assert.False(t, ok)
	assert.True(t, errors.Is(s.Drag(interpolate.Pt(1, 1)), ErrNotDragging))
}

func TestResetAndClear(t *testing.T) {
	s := newDefault()
	_, _, err := s.Click(interpolate.Pt(400, 0))
	require.NoError(t, err)
	_, _, err = s.Click(interpolate.Pt(400, 0))
	require.NoError(t, err)

	s.Clear()
	assert.Empty(t, s.Points())
	_, ok := s.Dragging()
	assert.False(t, ok)
	_, ok = s.Curve()
	assert.False(t, ok)

	s.Reset()
	assert.Equal(t, DefaultPoints(), s.Points())
	_, ok = s.Curve()
	assert.True(t, ok)
}

func TestSetModel(t *testing.T) {
	s := newDefault()

	require.NoError(t, s.SetModel(interpolate.Linear))
	cv, _ := s.Curve()
	assert.Equal(t, interpolate.Linear, cv.Model())
	assert.InDelta(t, 0, cv.Eval(-75), 1e-9)

	err := s.SetModel(interpolate.Model(12))
	assert.True(t, errors.Is(err, interpolate.ErrUnknownModel))
	assert.Equal(t, interpolate.Linear, s.Model())
}

func TestPolylineCache(t *testing.T) {
	s := newDefault()

	xs, ys := s.Polyline(DefaultResolution)
	assert.Len(t, xs, DefaultResolution+1)
	assert.Equal(t, -300.0, xs[0])
	assert.Equal(t, 300.0, xs[len(xs)-1])
	assert.Equal(t, 0.0, ys[0])

	xs2, _ := s.Polyline(DefaultResolution)
	assert.Same(t, &xs[0], &xs2[0], "second call is served from the cache")

	xs3, _ := s.Polyline(10)
	assert.Len(t, xs3, 11)

	require.NoError(t, s.SetModel(interpolate.Quadratic))
	xs4, ys4 := s.Polyline(DefaultResolution)
	assert.NotSame(t, &xs[0], &xs4[0], "model changes invalidate the cache")
	cv, _ := s.Curve()
	assert.Equal(t, cv.Eval(xs4[7]), ys4[7])
}

func TestHandleKey(t *testing.T) {
	s := newDefault()

	assert.True(t, s.HandleKey('h'))
	assert.False(t, s.ShowControlPoints())
	assert.True(t, s.HandleKey('H'))
	assert.True(t, s.ShowControlPoints())

	assert.True(t, s.HandleKey('1'))
	assert.Equal(t, interpolate.Linear, s.Model())
	assert.True(t, s.HandleKey('2'))
	assert.Equal(t, interpolate.Quadratic, s.Model())
	assert.True(t, s.HandleKey('3'))
	assert.Equal(t, interpolate.Cubic, s.Model())

	assert.True(t, s.HandleKey('c'))
	assert.Empty(t, s.Points())
	assert.True(t, s.HandleKey('r'))
	assert.Equal(t, DefaultPoints(), s.Points())

	assert.False(t, s.HandleKey('x'))

	lines := s.Instructions()
	assert.Equal(t, "Current Type: Cubic", lines[len(lines)-1])
	assert.Equal(t, "Click - Add Point", lines[0])
}
