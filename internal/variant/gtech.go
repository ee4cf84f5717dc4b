package variant

import "github.com/lbulej/vbo-tools/internal/vbo"

// NewGTechFanatic returns the converter for G-Tech Fanatic CSV exports.
// G-Tech logs coordinates pre-scaled by 10000 rather than in plain
// decimal degrees, and it flips the sign of lateral acceleration.
func NewGTechFanatic() *Converter {
	mappers := baseMappers()
	mappers[vbo.ChanLatitude] = scaled(1.0 / 10000)
	mappers[vbo.ChanLongitude] = scaled(-1.0 / 10000)
	mappers[vbo.ChanLatAcc] = zeroWhenBlank(vbo.ChanLatAcc, scaled(-1))

	return &Converter{
		name: "G-Tech Fanatic",
		base: map[string]string{
			"Time(s)":      vbo.ChanTime,
			"GPS_Lat":      vbo.ChanLatitude,
			"GPS_Lon":      vbo.ChanLongitude,
			"Speed(kph)":   vbo.ChanVelocity,
			"Heading(deg)": vbo.ChanHeading,
		},
		user: map[string]userChannel{
			"G-Force_Lat(G)": {vbo.ChanLatAcc, "m/s2"},
			"G-Force_Fwd(G)": {vbo.ChanLongAcc, "m/s2"},
		},
		mappers: mappers,
	}
}
