package vbo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadFrame parses a VBO document back into a Frame. It understands the
// sections Write produces: [header] supplies the channel order, [channel
// units] the units of user-defined channels, [comments] is kept verbatim
// one field per row, and [data] rows are decoded with the per-channel
// encodings of the format.
func ReadFrame(r io.Reader) (*Frame, error) {
	frame := &Frame{Units: map[string]string{}}

	var section string
	var units []string
	lineno := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			section = text
			continue
		}

		switch section {
		case "":
			// Preamble, such as the creation stamp.
		case "[header]":
			frame.Channels = append(frame.Channels, text)
		case "[channel units]":
			units = append(units, text)
		case "[comments]":
			frame.Comments = append(frame.Comments, []string{text})
		case "[column names]":
			// Redundant with [header]; the short column names carry no
			// extra information.
		case "[data]":
			row, err := parseDataRow(text, frame.Channels, lineno)
			if err != nil {
				return nil, err
			}
			frame.Rows = append(frame.Rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	user := userChannels(frame.Channels)
	if len(units) > 0 && len(units) != len(user) {
		return nil, fmt.Errorf("%d channel units for %d user channels", len(units), len(user))
	}
	for i, u := range units {
		frame.Units[user[i]] = u
	}

	if len(frame.Channels) == 0 {
		return nil, fmt.Errorf("no [header] section found")
	}
	return frame, nil
}

func parseDataRow(text string, channels []string, lineno int) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) != len(channels) {
		return nil, fmt.Errorf("data row at line %d has %d values, header has %d channels",
			lineno, len(fields), len(channels))
	}

	row := make([]float64, len(fields))
	for i, field := range fields {
		var v float64
		var err error
		if channels[i] == ChanTime {
			v, err = parseTimeField(field)
		} else {
			v, err = strconv.ParseFloat(field, 64)
		}
		if err != nil {
			return nil, fmt.Errorf("data row at line %d, channel %q: %w", lineno, channels[i], err)
		}
		row[i] = v
	}
	return row, nil
}
