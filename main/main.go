package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gospline/io"
	"github.com/phil-mansfield/gospline/math/interpolate"
	"github.com/phil-mansfield/gospline/render"
	"github.com/phil-mansfield/gospline/session"
)

func main() {
	var (
		sample, exampleConfig string
	)
	vars := map[string]*string{
		"Sample":        &sample,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&sample, "Sample", "",
		"Configuration file for [Sample] mode, which fits a curve through "+
			"a set of control points and writes out samples of it.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Sample'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Sample":
		con, err := io.ReadSampleConfig(sample)
		if err != nil {
			log.Fatal(err.Error())
		}

		if con.LogFile != "" {
			lf, err := os.Create(con.LogFile)
			if err != nil {
				log.Fatal(err.Error())
			}
			log.SetOutput(lf)
			defer lf.Close()
		}

		if err := sampleMain(con); err != nil {
			log.Fatal(err.Error())
		}

	case "ExampleConfig":
		switch exampleConfig {
		case "Sample":
			fmt.Println(io.ExampleSampleFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Sample'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}
	sort.Strings(setNames)

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gospline "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// sampleMain fits the configured curve and writes every requested output.
func sampleMain(con *io.SampleConfig) error {
	pts := session.DefaultPoints()
	if con.Input != "" {
		var err error
		if pts, err = io.ReadPoints(con.Input); err != nil {
			return err
		}
	}

	cv, err := interpolate.Build(pts, con.ParsedModel())
	if err != nil {
		return err
	}

	lo, hi := con.Range(cv.Domain())
	xs, ys := cv.Sample(lo, hi, con.Resolution)
	log.Printf(
		"Sampled %s curve through %s points at %s x values in [%g, %g].",
		cv.Model(), humanize.Comma(int64(len(pts))),
		humanize.Comma(int64(len(xs))), lo, hi,
	)

	if con.Output != "" {
		if err := io.WriteSampleFile(con.Output, cv, xs, ys); err != nil {
			return err
		}
	}

	if con.Image != "" {
		err := render.Image(
			con.Image, con.ImageWidth, con.ImageHeight, cv, xs, ys, true,
		)
		if err != nil {
			return err
		}
		log.Printf("Wrote %dx%d image to %s.",
			con.ImageWidth, con.ImageHeight, con.Image)
	}

	if con.Plot != "" {
		render.Plot(con.Plot, cv, xs, ys)
		plt.Execute()
		log.Printf("Wrote plot to %s.", con.Plot)
	}

	return nil
}
