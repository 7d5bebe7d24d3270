package interpolate

import (
	"errors"
)

var (
	// ErrInsufficientPoints is returned by Build when fewer than two points
	// are supplied. Callers can recover by waiting for more points.
	ErrInsufficientPoints = errors.New("interpolate: need at least 2 points")
	// ErrDegenerateKnotSpacing is returned by Build when two points share an
	// x coordinate, which would give a zero width segment.
	ErrDegenerateKnotSpacing = errors.New("interpolate: knot x values must be distinct")
	// ErrSingularSystem is returned when the tridiagonal system behind the
	// cubic fit has a zero pivot.
	ErrSingularSystem = errors.New("interpolate: singular tridiagonal system")
	// ErrUnknownModel is returned for a Model outside of Linear, Quadratic
	// and Cubic.
	ErrUnknownModel = errors.New("interpolate: unknown model")
)
