package io

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/phil-mansfield/table"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

// ReadPoints reads control points from fname. Files ending in .yaml or .yml
// are read with ParseYAMLPoints, and everything else is read as a text table
// whose first two columns are x and y.
//
// The points are returned in file order.
func ReadPoints(fname string) ([]interpolate.Point, error) {
	switch strings.ToLower(path.Ext(fname)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		pts, err := ParseYAMLPoints(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return pts, nil
	default:
		return readTablePoints(fname)
	}
}

func readTablePoints(fname string) ([]interpolate.Point, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys := cols[0], cols[1]
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"%s: x column has %d rows but y column has %d", fname, len(xs), len(ys),
		)
	}

	pts := make([]interpolate.Point, len(xs))
	for i := range pts {
		pts[i] = interpolate.Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}

// ParseYAMLPoints parses a YAML document holding a sequence of points, either
// at the top level or under a 'points' key. Each point is a mapping with x and
// y keys or a two element sequence. Coordinates can be numbers or numeric
// strings.
func ParseYAMLPoints(data []byte) ([]interpolate.Point, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if m, ok := doc.(map[string]interface{}); ok {
		doc = m["points"]
	}
	seq, ok := doc.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a sequence of points")
	}

	pts := make([]interpolate.Point, len(seq))
	for i, item := range seq {
		var x, y interface{}
		switch v := item.(type) {
		case map[string]interface{}:
			var okX, okY bool
			x, okX = v["x"]
			y, okY = v["y"]
			if !okX || !okY {
				return nil, fmt.Errorf("point %d needs both an x and a y key", i)
			}
		case []interface{}:
			if len(v) != 2 {
				return nil, fmt.Errorf(
					"point %d has %d coordinates, not 2", i, len(v),
				)
			}
			x, y = v[0], v[1]
		default:
			return nil, fmt.Errorf("point %d is not a mapping or a pair", i)
		}

		var err error
		if pts[i].X, err = cast.ToFloat64E(x); err != nil {
			return nil, fmt.Errorf("point %d: x: %w", i, err)
		}
		if pts[i].Y, err = cast.ToFloat64E(y); err != nil {
			return nil, fmt.Errorf("point %d: y: %w", i, err)
		}
	}

	return pts, nil
}
