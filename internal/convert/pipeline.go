// Package convert wires the CSV-to-VBO conversion pipeline: tokenize,
// detect the datalogger variant, convert rows to VBO channel values,
// deduplicate, interpolate to the target sampling interval, and emit.
// The whole record set is held in memory; deduplication and
// interpolation both need full adjacency, so there is no streaming.
package convert

import (
	"fmt"
	"io"

	"github.com/lbulej/vbo-tools/internal/csvlog"
	"github.com/lbulej/vbo-tools/internal/timeutil"
	"github.com/lbulej/vbo-tools/internal/variant"
	"github.com/lbulej/vbo-tools/internal/vbo"
)

// Resolution is the default target sampling interval in seconds.
const Resolution = 0.1

// Run converts one CSV telemetry log read from in into a VBO document
// written to out. Any stage error is fatal to the run; nothing is
// written to out before the full record set is known.
func Run(in io.Reader, out io.Writer, resolution float64, clock timeutil.Clock) error {
	rows, err := csvlog.Tokenize(in)
	if err != nil {
		return err
	}

	converter, frame, err := variant.Detect(rows)
	if err != nil {
		return err
	}

	vf, err := converter.Convert(frame)
	if err != nil {
		return fmt.Errorf("converting %s input: %w", converter.Name(), err)
	}

	Dedup(vf)
	if err := Interpolate(vf, resolution); err != nil {
		return err
	}

	w := vbo.NewWriter()
	if clock != nil {
		w.Clock = clock
	}
	if err := w.Write(out, vf); err != nil {
		return fmt.Errorf("writing VBO output: %w", err)
	}
	return nil
}
