package vbo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatters holds the fixed per-channel textual encoding of the VBO
// [data] section. The widths and precisions are what CircuitTools
// expects; they do not vary with the source variant.
var formatters = map[string]func(float64) string{
	ChanSatellites: func(v float64) string { return fmt.Sprintf("%03d", int(v)) },
	ChanTime:       formatTime,
	ChanLatitude:   func(v float64) string { return fmt.Sprintf("%+012.5f", v) },
	ChanLongitude:  func(v float64) string { return fmt.Sprintf("%+012.5f", v) },
	ChanVelocity:   func(v float64) string { return fmt.Sprintf("%07.3f", v) },
	ChanHeading:    func(v float64) string { return fmt.Sprintf("%06.2f", v) },
	ChanHeight:     func(v float64) string { return fmt.Sprintf("%+09.2f", v) },
	ChanLatAcc:     func(v float64) string { return fmt.Sprintf("%+06.3f", v) },
	ChanLongAcc:    func(v float64) string { return fmt.Sprintf("%+06.3f", v) },
}

// formatValue encodes one channel value for the [data] section.
func formatValue(channel string, v float64) (string, error) {
	format := formatters[channel]
	if format == nil {
		return "", fmt.Errorf("no formatter for channel %q", channel)
	}
	return format(v), nil
}

// formatTime encodes elapsed seconds as HHMMSS.cc. The fractional part is
// rounded half-up to centiseconds, carrying into the seconds when it
// rounds to a full second. The encoding is day-relative, so it wraps at
// 24 hours.
func formatTime(secs float64) string {
	whole := int(math.Floor(secs))
	centis := int(math.Floor((secs-float64(whole))*100 + 0.5))
	if centis >= 100 {
		whole++
		centis -= 100
	}
	whole %= 24 * 60 * 60

	h := whole / 3600
	m := whole / 60 % 60
	s := whole % 60
	return fmt.Sprintf("%02d%02d%02d.%02d", h, m, s, centis)
}

// parseTimeField decodes an HHMMSS.cc time value back to elapsed seconds.
func parseTimeField(s string) (float64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	if len(whole) != 6 {
		return 0, fmt.Errorf("time value %q is not in HHMMSS.cc form", s)
	}
	h, err := strconv.Atoi(whole[0:2])
	if err != nil {
		return 0, fmt.Errorf("time value %q: %w", s, err)
	}
	m, err := strconv.Atoi(whole[2:4])
	if err != nil {
		return 0, fmt.Errorf("time value %q: %w", s, err)
	}
	sec, err := strconv.Atoi(whole[4:6])
	if err != nil {
		return 0, fmt.Errorf("time value %q: %w", s, err)
	}

	secs := float64(h*3600 + m*60 + sec)
	if frac != "" {
		f, err := strconv.ParseFloat("0."+frac, 64)
		if err != nil {
			return 0, fmt.Errorf("time value %q: %w", s, err)
		}
		secs += f
	}
	return secs, nil
}
