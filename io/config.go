package io

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gospline/math/interpolate"
)

const (
	ExampleSampleFile = `[Sample]

#######################
# Required Parameters #
#######################

# Model can be set to one of:
# [ Linear | Quadratic | Cubic ]
# Linear connects the points with straight lines, Quadratic gives a curve with
# a continuous slope and Cubic is a natural cubic spline.
Model = Cubic

#######################
# Optional Parameters #
#######################

# File containing the control points. Files ending in .yaml or .yml are read as
# a list of {x: ..., y: ...} mappings or [x, y] pairs. Anything else is read as
# a whitespace separated text table whose first two columns are x and y. The
# points don't need to be sorted, but no two may share an x value. If Input
# isn't set, the five default points of the interactive editor are used.
# Input = path/to/points.txt

# Number of line segments the curve is sampled with. Default is 400.
# Resolution = 400

# Extends the sampled range past the first and last control point by this
# fraction of the point range on each side. Useful for looking at how the
# models extrapolate. Default is 0.
# Margin = 0.1

# Where the sampled x and y values are written, as a two column text table.
# '-' writes to stdout, which is the default.
# Output = -

# Plots the control points and the curve with matplotlib and saves the figure
# here. This needs a python installation with matplotlib.
# Plot = path/to/plot.png

# Renders the curve to a PNG image of the given size.
# Image = path/to/curve.png
# ImageWidth = 1600
# ImageHeight = 1200

# Log statements are written here instead of stderr.
# LogFile = log.out`
)

// SampleConfig holds the parameters of [Sample] mode.
type SampleConfig struct {
	// Required
	Model string

	// Optional
	Input                   string
	Resolution              int
	Margin                  float64
	Output                  string
	Plot                    string
	Image                   string
	ImageWidth, ImageHeight int
	LogFile                 string
}

// SampleWrapper exists so gcfg can read [Sample] sections.
type SampleWrapper struct {
	Sample SampleConfig
}

// DefaultSampleWrapper returns a wrapper with all the optional values set to
// their defaults.
func DefaultSampleWrapper() *SampleWrapper {
	con := SampleConfig{
		Resolution:  400,
		Output:      "-",
		ImageWidth:  1600,
		ImageHeight: 1200,
	}
	return &SampleWrapper{con}
}

func (con *SampleConfig) ValidModel() bool {
	_, err := interpolate.ParseModel(con.Model)
	return err == nil
}

func (con *SampleConfig) ValidResolution() bool {
	return con.Resolution > 0
}

func (con *SampleConfig) ValidMargin() bool {
	return con.Margin >= 0 && !math.IsInf(con.Margin, 0)
}

func (con *SampleConfig) ValidImageSize() bool {
	return con.ImageWidth > 0 && con.ImageHeight > 0
}

func (con *SampleConfig) ValidOutputs() bool {
	return con.Output != "" || con.Plot != "" || con.Image != ""
}

// ParsedModel returns the configured model. It should only be called after
// CheckInit.
func (con *SampleConfig) ParsedModel() interpolate.Model {
	m, err := interpolate.ParseModel(con.Model)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// CheckInit returns a descriptive error if any of the parameters are invalid.
func (con *SampleConfig) CheckInit() error {
	if !con.ValidModel() {
		return fmt.Errorf(
			"Invalid/non-existent 'Model' value '%s'. Must be one of "+
				"[Linear | Quadratic | Cubic].", con.Model,
		)
	} else if !con.ValidResolution() {
		return fmt.Errorf(
			"'Resolution' must be positive, but is %d.", con.Resolution,
		)
	} else if !con.ValidMargin() {
		return fmt.Errorf(
			"'Margin' must be a finite non-negative number, but is %g.",
			con.Margin,
		)
	} else if con.Image != "" && !con.ValidImageSize() {
		return fmt.Errorf(
			"'ImageWidth' and 'ImageHeight' must be positive, but are %d "+
				"and %d.", con.ImageWidth, con.ImageHeight,
		)
	} else if !con.ValidOutputs() {
		return fmt.Errorf(
			"At least one of 'Output', 'Plot' and 'Image' must be set.",
		)
	}

	return nil
}

// Range returns the x range covered by the samples for the given control
// point range.
func (con *SampleConfig) Range(lo, hi float64) (float64, float64) {
	pad := (hi - lo) * con.Margin
	return lo - pad, hi + pad
}

// ReadSampleConfig reads and checks the [Sample] config file fname.
func ReadSampleConfig(fname string) (*SampleConfig, error) {
	wrap := DefaultSampleWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Sample.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Sample, nil
}

// ParseSampleConfig is ReadSampleConfig for a config held in memory.
func ParseSampleConfig(str string) (*SampleConfig, error) {
	wrap := DefaultSampleWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.Sample.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Sample, nil
}
