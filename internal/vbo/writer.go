package vbo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lbulej/vbo-tools/internal/timeutil"
)

// baseChannel pairs a base channel name with its short column name for
// the [column names] section.
type baseChannel struct {
	channel string
	column  string
}

// requiredChannels are the base channels CircuitTools needs to make a
// log useful. They always appear in the header, in this order.
var requiredChannels = []baseChannel{
	{ChanSatellites, "sats"},
	{ChanTime, "time"},
	{ChanLatitude, "lat"},
	{ChanLongitude, "long"},
}

// optionalChannels are base channels a datalogger may or may not provide.
// Only the ones present in the frame appear in the output.
var optionalChannels = []baseChannel{
	{ChanVelocity, "velocity"},
	{ChanHeading, "heading"},
	{ChanHeight, "height"},
	{ChanVertVelMS, "vert-vel"},
	{ChanVertVelKMH, "vert-vel"},
	{ChanYawRate, "yaw-calc"},
}

// Writer emits VBO documents. The zero value is not usable; NewWriter
// returns a Writer stamping documents with the real clock.
type Writer struct {
	// Clock supplies the "File created on" stamp.
	Clock timeutil.Clock
}

// NewWriter returns a Writer using the real wall clock.
func NewWriter() *Writer {
	return &Writer{Clock: timeutil.RealClock{}}
}

// Write serializes the frame to out in the VBO format: creation stamp,
// [header], optional [channel units], [comments], [column names] and
// [data] sections, with CRLF line endings throughout. Emission is total;
// the whole document is written in one call.
func (w *Writer) Write(out io.Writer, f *Frame) error {
	bw := bufio.NewWriter(out)
	line := func(s string) {
		bw.WriteString(s)
		bw.WriteString("\r\n")
	}

	line(w.Clock.Now().Format("File created on 02/01/2006 at 03:04:05 PM"))

	base := make([]baseChannel, 0, len(requiredChannels)+len(optionalChannels))
	base = append(base, requiredChannels...)
	for _, c := range optionalChannels {
		if f.ChannelIndex(c.channel) >= 0 {
			base = append(base, c)
		}
	}
	user := userChannels(f.Channels)

	line("")
	line("[header]")
	for _, c := range base {
		line(c.channel)
	}
	for _, u := range user {
		line(u)
	}

	if len(user) > 0 {
		line("")
		line("[channel units]")
		for _, u := range user {
			line(f.Units[u])
		}
	}

	// Single-field comment rows are emitted verbatim. For wider rows the
	// first field becomes a label and the remaining fields, if any are
	// non-empty, follow separated by semicolons.
	line("")
	line("[comments]")
	for _, row := range f.Comments {
		switch {
		case len(row) == 1:
			line(row[0])
		case len(row) > 1 && len(strings.Join(row[1:], "")) > 0:
			label, _, _ := strings.Cut(row[0], ":")
			line(label + " : " + strings.Join(row[1:], ";"))
		}
	}

	columns := make([]string, 0, len(base)+len(user))
	for _, c := range base {
		columns = append(columns, c.column)
	}
	columns = append(columns, user...)

	line("")
	line("[column names]")
	line(strings.Join(columns, " "))

	// Data rows are emitted in header order, not frame order.
	order := make([]string, 0, len(base)+len(user))
	for _, c := range base {
		order = append(order, c.channel)
	}
	order = append(order, user...)

	line("")
	line("[data]")
	values := make([]string, len(order))
	for _, row := range f.Rows {
		for i, name := range order {
			idx := f.ChannelIndex(name)
			if idx < 0 {
				return fmt.Errorf("frame has no %q channel", name)
			}
			value, err := formatValue(name, row[idx])
			if err != nil {
				return err
			}
			values[i] = value
		}
		line(strings.Join(values, " "))
	}

	return bw.Flush()
}

// userChannels returns the channels that are not base channels,
// preserving their order.
func userChannels(channels []string) []string {
	var user []string
	for _, c := range channels {
		if !isBaseChannel(c) {
			user = append(user, c)
		}
	}
	return user
}

func isBaseChannel(name string) bool {
	for _, c := range requiredChannels {
		if c.channel == name {
			return true
		}
	}
	for _, c := range optionalChannels {
		if c.channel == name {
			return true
		}
	}
	return false
}
