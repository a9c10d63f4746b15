package asclog

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/erptools/erplog/pkg/model"
	"github.com/erptools/erplog/pkg/octal"
)

// DefaultColumnWidth is the historical left-justified field width of the
// ASCII form. The final field carries no trailing padding.
const DefaultColumnWidth = 10

// Write emits the document in the five-field ASCII form, flags rendered
// in octal, retained comments restored at their recorded positions.
func Write(w io.Writer, doc *model.Document) error {
	return WriteColumns(w, doc, DefaultColumnWidth)
}

// WriteColumns is Write with an explicit column width. A width smaller
// than 1 falls back to the default.
func WriteColumns(w io.Writer, doc *model.Document, width int) error {
	if width < 1 {
		width = DefaultColumnWidth
	}
	bw := bufio.NewWriter(w)

	next := 0
	for i, rec := range doc.Records {
		for next < len(doc.Comments) && doc.Comments[next].Before <= i {
			if err := writeLine(bw, doc.Comments[next].Text); err != nil {
				return err
			}
			next++
		}
		if err := writeLine(bw, formatRecord(rec, width)); err != nil {
			return err
		}
	}
	for next < len(doc.Comments) {
		if err := writeLine(bw, doc.Comments[next].Text); err != nil {
			return err
		}
		next++
	}
	return bw.Flush()
}

// FormatRecord renders one record as a data line at the default width.
func FormatRecord(rec model.Record) string {
	return formatRecord(rec, DefaultColumnWidth)
}

func formatRecord(rec model.Record, width int) string {
	fields := [dataFieldCount]string{
		strconv.FormatInt(rec.ItemIndex, 10),
		strconv.FormatInt(rec.EventCode, 10),
		strconv.FormatInt(rec.CondCode, 10),
		octal.Encode(rec.Flags),
		strconv.FormatInt(rec.Timestamp, 10),
	}

	var b strings.Builder
	for i, f := range fields {
		b.WriteString(f)
		if i == len(fields)-1 {
			break
		}
		pad := width - len(f)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

func writeLine(bw *bufio.Writer, text string) error {
	if _, err := bw.WriteString(text); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
