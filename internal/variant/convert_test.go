package variant

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbulej/vbo-tools/internal/csvlog"
	"github.com/lbulej/vbo-tools/internal/monitoring"
	"github.com/lbulej/vbo-tools/internal/vbo"
)

func TestConvertRaceChrono(t *testing.T) {
	frame, err := csvlog.NewFrame([]csvlog.Row{
		row(1, "Locked satellites", "Timestamp (s)", "Latitude (deg)", "Longitude (deg)",
			"Speed (kph)", "Bearing (deg)", "Altitude (m)",
			"Lateral Acceleration (G)", "Longitudinal Acceleration (G)"),
		row(2, "7", "12.5", "50.0", "14.5", "100.0", "90.0", "250.0", "0.25", "-0.50"),
	}, 0)
	require.NoError(t, err)

	vf, err := NewRaceChrono().Convert(frame)
	require.NoError(t, err)

	assert.Equal(t, []string{
		vbo.ChanSatellites, vbo.ChanTime, vbo.ChanLatitude, vbo.ChanLongitude,
		vbo.ChanVelocity, vbo.ChanHeading, vbo.ChanHeight, vbo.ChanLatAcc, vbo.ChanLongAcc,
	}, vf.Channels)
	assert.Equal(t, map[string]string{vbo.ChanLatAcc: "m/s2", vbo.ChanLongAcc: "m/s2"}, vf.Units)

	require.Len(t, vf.Rows, 1)
	got := vf.Rows[0]
	want := []float64{7, 12.5, 50.0 * 60, 14.5 * -60, 100, 90, 250, 0.25, -0.5}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "channel %s", vf.Channels[i])
	}
}

func TestConvertGTechFanatic(t *testing.T) {
	frame, err := csvlog.NewFrame([]csvlog.Row{
		row(1, "Time(s)", "GPS_Lat", "GPS_Lon", "Speed(kph)", "Heading(deg)",
			"G-Force_Lat(G)", "G-Force_Fwd(G)"),
		row(2, "0.5", "503000", "144000", "80.0", "45.0", "0.3", "0.1"),
	}, 0)
	require.NoError(t, err)

	vf, err := NewGTechFanatic().Convert(frame)
	require.NoError(t, err)

	// No satellites column in the source, so a constant channel of 5 is
	// fudged in front.
	require.NotEmpty(t, vf.Channels)
	assert.Equal(t, vbo.ChanSatellites, vf.Channels[0])

	require.Len(t, vf.Rows, 1)
	got := vf.Rows[0]
	want := []float64{5, 0.5, 50.3, -14.4, 80, 45, -0.3, 0.1}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "channel %s", vf.Channels[i])
	}
}

func TestConvertBlankAccelerationDefaultsToZero(t *testing.T) {
	var logged []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		logged = append(logged, fmt.Sprintf(format, v...))
	})
	defer monitoring.SetLogger(nil)

	frame, err := csvlog.NewFrame([]csvlog.Row{
		row(1, "Time(s)", "GPS_Lat", "GPS_Lon", "Speed(kph)", "Heading(deg)", "G-Force_Lat(G)"),
		row(2, "0.5", "503000", "144000", "80.0", "45.0", ""),
	}, 0)
	require.NoError(t, err)

	vf, err := NewGTechFanatic().Convert(frame)
	require.NoError(t, err)

	latAcc := vf.ChannelIndex(vbo.ChanLatAcc)
	require.GreaterOrEqual(t, latAcc, 0)
	assert.Zero(t, vf.Rows[0][latAcc])
	assert.NotEmpty(t, logged)
}

func TestConvertFieldParseError(t *testing.T) {
	frame, err := csvlog.NewFrame([]csvlog.Row{
		row(1, "Locked satellites", "Timestamp (s)", "Latitude (deg)", "Longitude (deg)",
			"Speed (kph)", "Bearing (deg)", "Altitude (m)"),
		row(2, "7", "0.0", "50.0", "14.5", "100.0", "90.0", "250.0"),
		row(3, "7", "0.1", "50.0", "14.5", "fast", "90.0", "250.0"),
	}, 0)
	require.NoError(t, err)

	_, err = NewRaceChrono().Convert(frame)
	var fpe *FieldParseError
	require.True(t, errors.As(err, &fpe), "want FieldParseError, got %v", err)
	assert.Equal(t, "Speed (kph)", fpe.Column)
	assert.Equal(t, 3, fpe.Line)
	assert.Equal(t, "fast", fpe.Value)
}

func TestConvertDropsUnrecognizedColumns(t *testing.T) {
	frame, err := csvlog.NewFrame([]csvlog.Row{
		row(1, "Time(s)", "GPS_Lat", "GPS_Lon", "Speed(kph)", "Heading(deg)", "Battery(%)"),
		row(2, "0.5", "503000", "144000", "80.0", "45.0", "not a number"),
	}, 0)
	require.NoError(t, err)

	vf, err := NewGTechFanatic().Convert(frame)
	require.NoError(t, err)
	assert.Equal(t, -1, vf.ChannelIndex("Battery(%)"))
	assert.Len(t, vf.Rows[0], len(vf.Channels))
}

func TestConvertKeepsInfoRowsAsComments(t *testing.T) {
	frame, err := csvlog.NewFrame([]csvlog.Row{
		row(1, "logger banner"),
		row(2, "Session title:", "My Session"),
		row(3, "Time(s)", "GPS_Lat", "GPS_Lon", "Speed(kph)", "Heading(deg)"),
		row(4, "0.5", "503000", "144000", "80.0", "45.0"),
	}, 2)
	require.NoError(t, err)

	vf, err := NewGTechFanatic().Convert(frame)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"logger banner"},
		{"Session title:", "My Session"},
	}, vf.Comments)
}

func TestTrackMasterWallClockSeconds(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"2014-05-03T14:30:15.250000+0200", 14*3600 + 30*60 + 15.25},
		{"2014-05-03T14:30:15.250000+02:00", 14*3600 + 30*60 + 15.25},
		{"2014-05-03T00:00:01.500000Z", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := wallClockSeconds(tt.value)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}

	t.Run("rejects non-ISO time", func(t *testing.T) {
		_, err := wallClockSeconds("14:30:15")
		require.Error(t, err)
	})
}

func TestConvertTrackMaster(t *testing.T) {
	frame, err := csvlog.NewFrame([]csvlog.Row{
		row(1, "time=", "latitude=", "longitude=", "speed=", "bearing=", "altitude="),
		row(2, "2014-05-03T14:30:15.250000+0200", "50.0", "14.5", "120.0", "180.0", "300.0"),
	}, 0)
	require.NoError(t, err)

	vf, err := NewTrackMaster().Convert(frame)
	require.NoError(t, err)

	ti := vf.ChannelIndex(vbo.ChanTime)
	require.GreaterOrEqual(t, ti, 0)
	assert.InDelta(t, 52215.25, vf.Rows[0][ti], 1e-6)

	lat := vf.ChannelIndex(vbo.ChanLatitude)
	assert.InDelta(t, 3000, vf.Rows[0][lat], 1e-9)
}
