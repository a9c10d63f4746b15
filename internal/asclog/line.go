// Package asclog reads and writes the ASCII rendering of an event log.
//
// A line whose first non-whitespace character is not a decimal digit is a
// comment and passes through verbatim; arbitrary text may appear between
// data lines as long as it does not start with a digit. A data line
// carries exactly five whitespace-separated fields in fixed order:
//
//	<item_index> <event_code> <condition_code> <flags:octal> <timestamp>
package asclog

import (
	"strconv"
	"strings"

	"github.com/erptools/erplog/pkg/errclass"
	"github.com/erptools/erplog/pkg/model"
	"github.com/erptools/erplog/pkg/octal"
)

// LineKind tags the outcome of classifying one input line.
type LineKind int

const (
	LineComment LineKind = iota
	LineData
)

// Line is one classified input line.
type Line struct {
	Kind    LineKind
	Comment string       // verbatim text when Kind == LineComment
	Record  model.Record // parsed fields when Kind == LineData
}

const dataFieldCount = 5

// ClassifyLine decides whether a line is a comment or a data line and
// parses the latter. Blank and all-whitespace lines are comments.
func ClassifyLine(text string) (Line, error) {
	trimmed := strings.TrimLeft(text, " \t")
	if trimmed == "" || trimmed[0] < '0' || trimmed[0] > '9' {
		return Line{Kind: LineComment, Comment: text}, nil
	}
	rec, err := parseDataLine(trimmed)
	if err != nil {
		return Line{}, err
	}
	return Line{Kind: LineData, Record: rec}, nil
}

func parseDataLine(text string) (model.Record, error) {
	fields := strings.Fields(text)
	if len(fields) != dataFieldCount {
		return model.Record{}, errclass.ErrMalformedLine.WithMessagef("expected %d fields, got %d", dataFieldCount, len(fields))
	}

	itemIndex, err := parseDecimal("item_index", fields[0])
	if err != nil {
		return model.Record{}, err
	}
	if itemIndex < 0 {
		return model.Record{}, errclass.ErrMalformedLine.WithMessagef("item_index must be non-negative, got %d", itemIndex)
	}

	// event_code is the only field that may carry a leading '-'.
	eventCode, err := parseDecimal("event_code", fields[1])
	if err != nil {
		return model.Record{}, err
	}

	condCode, err := parseDecimal("condition_code", fields[2])
	if err != nil {
		return model.Record{}, err
	}

	flags, err := octal.Decode(fields[3])
	if err != nil {
		return model.Record{}, err
	}

	timestamp, err := parseDecimal("timestamp", fields[4])
	if err != nil {
		return model.Record{}, err
	}
	if timestamp < 0 {
		return model.Record{}, errclass.ErrMalformedLine.WithMessagef("timestamp must be non-negative, got %d", timestamp)
	}

	return model.NewRecord(itemIndex, eventCode, condCode, flags, timestamp)
}

func parseDecimal(field, token string) (int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, errclass.ErrMalformedLine.WithMessagef("%s %q is not a decimal integer", field, token)
	}
	return v, nil
}
