// Package vbo models RaceLogic VBO telemetry documents: the canonical
// channel vocabulary, an in-memory frame of channel values, and the
// reader/writer for the on-disk format consumed by CircuitTools.
package vbo

// Channel names. These follow the RaceLogic vocabulary: the first group
// are base channels with fixed short column names, the second group are
// user-defined channels whose column names equal the channel names.
const (
	ChanSatellites = "satellites"
	ChanTime       = "time"
	ChanLatitude   = "latitude"
	ChanLongitude  = "longitude"
	ChanVelocity   = "velocity kmh"
	ChanHeading    = "heading"
	ChanHeight     = "height"
	ChanVertVelMS  = "vertical velocity m/s"
	ChanVertVelKMH = "vertical velocity kmh"
	ChanYawRate    = "yaw rate deg/s"

	ChanLatAcc  = "LatAcc"
	ChanLongAcc = "LongAcc"
)

// Frame is an in-memory VBO document: an ordered set of channels and one
// float64 value per channel per row. Latitude and longitude are stored in
// signed angular minutes (longitude negated, RaceLogic convention) and
// time is elapsed seconds within the day.
type Frame struct {
	// Channels names the value columns of Rows, in order.
	Channels []string
	// Units maps user-defined channel names to their units.
	Units map[string]string
	// Comments holds the pre-header rows of the source file, verbatim.
	Comments [][]string
	// Rows holds the channel values, one slice per sample.
	Rows [][]float64
}

// ChannelIndex returns the index of the named channel in Channels, or -1
// if the frame does not carry it.
func (f *Frame) ChannelIndex(name string) int {
	for i, c := range f.Channels {
		if c == name {
			return i
		}
	}
	return -1
}
