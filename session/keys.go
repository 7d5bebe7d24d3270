package session

import (
	"fmt"
	"unicode"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

var instructions = []string{
	"Click - Add Point",
	"Click+Drag - Move Point",
	"H - Toggle Control Points",
	"R - Reset Points",
	"C - Clear Points",
	"1 - Linear Spline",
	"2 - Quadratic Spline",
	"3 - Cubic Spline (Natural)",
}

// HandleKey applies the editor's key bindings and returns false if key isn't
// bound to anything. Letters are case insensitive.
func (s *Session) HandleKey(key rune) bool {
	switch unicode.ToUpper(key) {
	case 'H':
		s.ToggleControlPoints()
	case 'R':
		s.Reset()
	case 'C':
		s.Clear()
	case '1':
		s.SetModel(interpolate.Linear)
	case '2':
		s.SetModel(interpolate.Quadratic)
	case '3':
		s.SetModel(interpolate.Cubic)
	default:
		return false
	}
	return true
}

// Instructions returns the help text an editor shows, ending with the name of
// the selected model.
func (s *Session) Instructions() []string {
	out := append([]string{}, instructions...)
	return append(out, fmt.Sprintf("Current Type: %s", s.model))
}
