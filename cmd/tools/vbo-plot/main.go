// vbo-plot renders a velocity-over-time chart from a VBO telemetry file.
// It is a QA aid for eyeballing a converted lap before feeding it to the
// analysis tool: interpolation gaps and unit mistakes show up immediately
// in the speed trace.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lbulej/vbo-tools/internal/units"
	"github.com/lbulej/vbo-tools/internal/vbo"
)

var (
	output    = flag.String("out", "velocity.png", "Output PNG path")
	speedUnit = flag.String("units", units.KPH, "Speed units for the y axis")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: vbo-plot [flags] <file.vbo>")
	}
	if !units.IsValid(*speedUnit) {
		log.Fatalf("invalid units %q, expected one of: %s", *speedUnit, units.ValidUnitsString())
	}

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer f.Close()

	frame, err := vbo.ReadFrame(f)
	if err != nil {
		log.Fatalf("failed to read %s: %v", path, err)
	}

	points, err := velocityPoints(frame, *speedUnit)
	if err != nil {
		log.Fatalf("failed to extract velocity trace: %v", err)
	}

	p := plot.New()
	p.Title.Text = filepath.Base(path)
	p.X.Label.Text = "elapsed time (s)"
	p.Y.Label.Text = "velocity (" + *speedUnit + ")"

	line, err := plotter.NewLine(points)
	if err != nil {
		log.Fatalf("failed to build plot line: %v", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatalf("failed to save plot: %v", err)
	}
	log.Printf("wrote %s (%d samples)", *output, len(points))
}

// velocityPoints extracts (elapsed time, velocity) pairs from the frame,
// with time rebased to the first sample and velocity converted from km/h
// to the target units.
func velocityPoints(frame *vbo.Frame, targetUnits string) (plotter.XYs, error) {
	ti := frame.ChannelIndex(vbo.ChanTime)
	vi := frame.ChannelIndex(vbo.ChanVelocity)
	if ti < 0 || vi < 0 {
		return nil, fmt.Errorf("file carries no time or velocity channel")
	}
	if len(frame.Rows) == 0 {
		return nil, fmt.Errorf("file carries no data rows")
	}

	start := frame.Rows[0][ti]
	points := make(plotter.XYs, len(frame.Rows))
	for i, row := range frame.Rows {
		points[i] = plotter.XY{
			X: row[ti] - start,
			Y: units.ConvertSpeed(row[vi], targetUnits),
		}
	}
	return points, nil
}
