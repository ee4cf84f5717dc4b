package convert

import (
	"slices"

	"github.com/lbulej/vbo-tools/internal/vbo"
)

// Dedup removes each row whose channel values are identical to the
// immediately preceding retained row. Only adjacency matters;
// non-consecutive duplicates are legitimate samples and are preserved.
// Comparison is on converted channel values, so rows whose source text
// differed only in formatting still deduplicate. The pass is idempotent.
func Dedup(f *vbo.Frame) {
	if len(f.Rows) == 0 {
		return
	}

	kept := f.Rows[:1]
	for _, row := range f.Rows[1:] {
		if slices.Equal(row, kept[len(kept)-1]) {
			continue
		}
		kept = append(kept, row)
	}
	f.Rows = kept
}
