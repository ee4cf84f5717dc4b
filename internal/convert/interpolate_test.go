package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbulej/vbo-tools/internal/vbo"
)

func TestInterpolateDensity(t *testing.T) {
	// Gap of 0.35 s needs floor(0.35/0.1) = 3 synthetic samples.
	f := timeSpeedFrame(
		[]float64{0.0, 100},
		[]float64{0.35, 107},
	)
	require.NoError(t, Interpolate(f, 0.1))
	require.Len(t, f.Rows, 5)

	wantTimes := []float64{0.0, 0.1, 0.2, 0.3, 0.35}
	for i, row := range f.Rows {
		assert.InDelta(t, wantTimes[i], row[0], 1e-9, "row %d time", i)
	}

	// Speed is linear in time between the endpoints.
	for i, row := range f.Rows {
		want := 100 + (row[0]-0.0)/0.35*7
		assert.InDelta(t, want, row[1], 1e-9, "row %d speed", i)
	}
}

func TestInterpolateClampsAtNextSample(t *testing.T) {
	// A gap of exactly two intervals yields a single synthetic sample;
	// the second would land on the next real sample and is dropped.
	f := timeSpeedFrame(
		[]float64{0.0, 100},
		[]float64{0.2, 102},
	)
	require.NoError(t, Interpolate(f, 0.1))
	require.Len(t, f.Rows, 3)
	assert.InDelta(t, 0.1, f.Rows[1][0], 1e-9)
	assert.InDelta(t, 101, f.Rows[1][1], 1e-9)
}

func TestInterpolateSkipsNonMonotonicTime(t *testing.T) {
	f := timeSpeedFrame(
		[]float64{5.0, 100},
		[]float64{4.9, 101},
	)
	require.NoError(t, Interpolate(f, 0.1))
	assert.Equal(t, [][]float64{
		{5.0, 100},
		{4.9, 101},
	}, f.Rows)
}

func TestInterpolateEqualTimestamps(t *testing.T) {
	f := timeSpeedFrame(
		[]float64{1.0, 100},
		[]float64{1.0, 101},
	)
	require.NoError(t, Interpolate(f, 0.1))
	require.Len(t, f.Rows, 2)
}

func TestInterpolatePassesCleanInputThrough(t *testing.T) {
	f := timeSpeedFrame(
		[]float64{0.0, 100},
		[]float64{0.1, 101},
		[]float64{0.2, 102},
		[]float64{0.3, 103},
	)
	want := append([][]float64{}, f.Rows...)
	require.NoError(t, Interpolate(f, 0.1))
	assert.Equal(t, want, f.Rows)
}

func TestInterpolateRequiresTimeChannel(t *testing.T) {
	f := &vbo.Frame{
		Channels: []string{vbo.ChanVelocity},
		Rows:     [][]float64{{100}},
	}
	require.Error(t, Interpolate(f, 0.1))
}

func TestInterpolateRejectsNonPositiveResolution(t *testing.T) {
	f := timeSpeedFrame([]float64{0.0, 100})
	require.Error(t, Interpolate(f, 0))
	require.Error(t, Interpolate(f, -0.1))
}
