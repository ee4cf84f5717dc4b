// Package variant detects which datalogger produced a CSV export and
// converts its rows into VBO channel values.
//
// The supported variants form a closed set. Each one names the CSV
// columns it expects and how their values map onto the VBO channel
// vocabulary; detection picks exactly one converter per input file and
// the same converter then handles every data row.
package variant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lbulej/vbo-tools/internal/csvlog"
	"github.com/lbulej/vbo-tools/internal/monitoring"
	"github.com/lbulej/vbo-tools/internal/vbo"
)

// defaultSatellites is the satellite count fudged into the output when
// the source variant does not log one. CircuitTools refuses logs without
// a satellites channel.
const defaultSatellites = 5

// mapper converts one CSV field value into a VBO channel value.
type mapper func(value string) (float64, error)

// userChannel describes a user-defined VBO channel and its units.
type userChannel struct {
	name string
	unit string
}

// Converter maps one datalogger variant's columns and value conventions
// onto VBO channels.
type Converter struct {
	name    string
	base    map[string]string      // CSV column name → base channel
	user    map[string]userChannel // CSV column name → user-defined channel
	mappers map[string]mapper      // channel → value mapper
}

// Name returns the variant name.
func (c *Converter) Name() string {
	return c.name
}

// Recognizes reports whether the row carries every column name this
// variant requires. Extra columns are allowed; unrecognized ones are
// dropped during conversion.
func (c *Converter) Recognizes(row []string) bool {
	for column := range c.base {
		if !contains(row, column) {
			return false
		}
	}
	return true
}

// UnknownVariantError reports that no row matched any known variant's
// column-name set. The tool aborts rather than guess at the layout.
type UnknownVariantError struct{}

func (e *UnknownVariantError) Error() string {
	return "no known datalogger variant matches the input"
}

// FieldParseError reports a field value that failed its variant-specific
// conversion. A single bad value aborts the whole conversion; dropping
// the row silently would corrupt the lap trace downstream.
type FieldParseError struct {
	Column string
	Line   int
	Value  string
	Err    error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("cannot convert %q in column %q at line %d: %v", e.Value, e.Column, e.Line, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}

// Converters returns the known variants in detection priority order.
func Converters() []*Converter {
	return []*Converter{
		NewRaceChrono(),
		NewGTechFanatic(),
		NewTrackMaster(),
	}
}

// Detect scans rows in order for the header row and selects the matching
// converter. The header row is the first row whose field count equals
// the maximum seen so far and whose fields match a variant's column set;
// ties between variants go to the first match in priority order. On
// success Detect also returns the frame split at the header.
func Detect(rows []csvlog.Row) (*Converter, *csvlog.Frame, error) {
	converters := Converters()

	maxWidth := 0
	for i, row := range rows {
		if row.Width() < maxWidth {
			continue
		}
		maxWidth = row.Width()

		for _, c := range converters {
			if c.Recognizes(row.Fields) {
				frame, err := csvlog.NewFrame(rows, i)
				if err != nil {
					return nil, nil, err
				}
				return c, frame, nil
			}
		}
	}
	return nil, nil, &UnknownVariantError{}
}

// Convert produces a VBO frame from a detected frame. Columns unknown to
// the variant are dropped; recognized columns are converted with the
// variant's value mappers, in column order. When the variant supplies no
// satellites channel a constant one is prepended.
func (c *Converter) Convert(frame *csvlog.Frame) (*vbo.Frame, error) {
	columns := frame.Header.Fields

	// Resolve each column to a channel name, or "" if unsupported.
	names := make([]string, len(columns))
	for i, column := range columns {
		if channel, ok := c.base[column]; ok {
			names[i] = channel
		} else if channel, ok := c.user[column]; ok {
			names[i] = channel.name
		}
	}

	var channels []string
	for _, name := range names {
		if name != "" {
			channels = append(channels, name)
		}
	}

	var prefix []float64
	if !contains(channels, vbo.ChanSatellites) {
		channels = append([]string{vbo.ChanSatellites}, channels...)
		prefix = []float64{defaultSatellites}
	}

	mappers := make([]mapper, len(columns))
	for i, name := range names {
		if name == "" {
			continue
		}
		m := c.mappers[name]
		if m == nil {
			return nil, fmt.Errorf("no value mapper for channel %q in variant %s", name, c.name)
		}
		mappers[i] = m
	}

	rows := make([][]float64, 0, len(frame.Data))
	for _, data := range frame.Data {
		row := make([]float64, 0, len(channels))
		row = append(row, prefix...)
		for i, field := range data.Fields {
			if mappers[i] == nil {
				continue
			}
			v, err := mappers[i](field)
			if err != nil {
				return nil, &FieldParseError{Column: columns[i], Line: data.Line, Value: field, Err: err}
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	units := map[string]string{}
	for _, column := range columns {
		if channel, ok := c.user[column]; ok && contains(channels, channel.name) {
			units[channel.name] = channel.unit
		}
	}

	comments := make([][]string, 0, len(frame.Info))
	for _, row := range frame.Info {
		comments = append(comments, row.Fields)
	}

	return &vbo.Frame{
		Channels: channels,
		Units:    units,
		Comments: comments,
		Rows:     rows,
	}, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// parseFloat is the plain numeric mapper.
func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// scaled returns a mapper that multiplies the parsed value by factor.
func scaled(factor float64) mapper {
	return func(value string) (float64, error) {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, err
		}
		return v * factor, nil
	}
}

// zeroWhenBlank wraps a mapper so a blank field becomes zero instead of
// an error. Some loggers leave acceleration fields empty between fixes.
func zeroWhenBlank(channel string, m mapper) mapper {
	return func(value string) (float64, error) {
		if strings.TrimSpace(value) == "" {
			monitoring.Logf("blank %s value defaulted to 0", channel)
			return 0, nil
		}
		return m(value)
	}
}

// baseMappers returns the default channel value mappers shared by the
// variants. Latitude and longitude are converted from decimal degrees to
// angular minutes, with longitude negated per the RaceLogic convention
// (west positive).
func baseMappers() map[string]mapper {
	return map[string]mapper{
		vbo.ChanSatellites: parseFloat,
		vbo.ChanTime:       parseFloat,
		vbo.ChanLatitude:   scaled(60),
		vbo.ChanLongitude:  scaled(-60),
		vbo.ChanVelocity:   parseFloat,
		vbo.ChanHeading:    parseFloat,
		vbo.ChanHeight:     parseFloat,
		vbo.ChanLatAcc:     zeroWhenBlank(vbo.ChanLatAcc, parseFloat),
		vbo.ChanLongAcc:    zeroWhenBlank(vbo.ChanLongAcc, parseFloat),
	}
}
