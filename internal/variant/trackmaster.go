package variant

import (
	"fmt"
	"time"

	"github.com/lbulej/vbo-tools/internal/vbo"
)

// trackMasterTimeLayouts are the accepted encodings of the TrackMaster
// timestamp column, an ISO-8601 wall-clock time with a numeric or
// colon-separated zone offset.
var trackMasterTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
}

// NewTrackMaster returns the converter for TrackMaster exports. The
// input is expected to be a flattened export of the overview and laps
// sheets; only the row stream matters here. TrackMaster logs wall-clock
// timestamps, which are converted to seconds since midnight of the same
// day in the source timezone.
func NewTrackMaster() *Converter {
	mappers := baseMappers()
	mappers[vbo.ChanTime] = wallClockSeconds

	return &Converter{
		name: "TrackMaster",
		base: map[string]string{
			"time=":      vbo.ChanTime,
			"latitude=":  vbo.ChanLatitude,
			"longitude=": vbo.ChanLongitude,
			"speed=":     vbo.ChanVelocity,
			"bearing=":   vbo.ChanHeading,
			"altitude=":  vbo.ChanHeight,
		},
		user: map[string]userChannel{
			"lateral_accel=": {vbo.ChanLatAcc, "m/s2"},
			"accel=":         {vbo.ChanLongAcc, "m/s2"},
		},
		mappers: mappers,
	}
}

// wallClockSeconds converts an ISO-8601 timestamp to elapsed seconds
// since the start of its day, keeping the source timezone.
func wallClockSeconds(value string) (float64, error) {
	var t time.Time
	var err error
	for _, layout := range trackMasterTimeLayouts {
		t, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("timestamp %q is not an ISO-8601 time", value)
	}

	secs := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
	return secs, nil
}
