package variant

import "github.com/lbulej/vbo-tools/internal/vbo"

// NewRaceChrono returns the converter for RaceChrono CSV exports.
// RaceChrono logs decimal-degree coordinates, elapsed seconds and speed
// in km/h, so only the shared value conventions apply.
func NewRaceChrono() *Converter {
	return &Converter{
		name: "RaceChrono",
		base: map[string]string{
			"Locked satellites": vbo.ChanSatellites,
			"Timestamp (s)":     vbo.ChanTime,
			"Latitude (deg)":    vbo.ChanLatitude,
			"Longitude (deg)":   vbo.ChanLongitude,
			"Speed (kph)":       vbo.ChanVelocity,
			"Bearing (deg)":     vbo.ChanHeading,
			"Altitude (m)":      vbo.ChanHeight,
		},
		user: map[string]userChannel{
			"Lateral Acceleration (G)":      {vbo.ChanLatAcc, "m/s2"},
			"Longitudinal Acceleration (G)": {vbo.ChanLongAcc, "m/s2"},
		},
		mappers: baseMappers(),
	}
}
