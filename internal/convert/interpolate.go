package convert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lbulej/vbo-tools/internal/vbo"
)

// interpEps absorbs float64 fencepost noise when counting interpolation
// steps and when clamping the last synthetic sample against the next
// real one.
const interpEps = 1e-9

// Interpolate inserts synthetic rows between temporally adjacent rows so
// that no gap exceeds resolution seconds. For a pair (A, B) with gap g,
// floor(g/resolution) samples are placed at A + resolution·k, every
// channel except time linearly interpolated between A and B; a sample
// landing on B is dropped so synthetic times stay strictly before B.
// Pairs with non-increasing time are passed through untouched: time
// running backwards is a logger artifact, and fabricating samples inside
// it would invent data.
func Interpolate(f *vbo.Frame, resolution float64) error {
	if resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %g", resolution)
	}
	ti := f.ChannelIndex(vbo.ChanTime)
	if ti < 0 {
		return fmt.Errorf("frame has no %q channel", vbo.ChanTime)
	}

	out := make([][]float64, 0, len(f.Rows))
	diff := make([]float64, len(f.Channels))
	for i, row := range f.Rows {
		if i > 0 {
			prev := f.Rows[i-1]
			gap := row[ti] - prev[ti]
			if gap > resolution+interpEps {
				floats.SubTo(diff, row, prev)
				steps := int(math.Floor(gap/resolution + interpEps))
				for k := 1; k <= steps; k++ {
					offset := float64(k) * resolution
					t := prev[ti] + offset
					if row[ti]-t <= interpEps {
						break
					}
					synthetic := make([]float64, len(row))
					floats.AddScaledTo(synthetic, prev, offset/gap, diff)
					synthetic[ti] = t
					out = append(out, synthetic)
				}
			}
		}
		out = append(out, row)
	}
	f.Rows = out
	return nil
}
