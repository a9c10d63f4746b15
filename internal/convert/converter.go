// Package convert orchestrates the conversion pipeline in both
// directions: read or decode the source, run the integrity checks, then
// re-encode. The caller receives either a complete target representation
// or an error; never a partial result.
package convert

import (
	"io"
	"strings"

	"github.com/erptools/erplog/internal/asclog"
	"github.com/erptools/erplog/internal/binlog"
	"github.com/erptools/erplog/internal/validate"
	"github.com/erptools/erplog/pkg/progress"
)

// Options control a conversion.
type Options struct {
	// InputEncoding applies to ASCII sources: "", "utf8", or "latin1".
	InputEncoding string
	// ColumnWidth applies to ASCII output; 0 means the default layout.
	ColumnWidth int
	// Progress, when non-nil, is notified as each pipeline stage
	// completes.
	Progress progress.Callback
}

// Each direction runs three stages: load, validate, emit.
const pipelineStages = 3

// AsciiToBinary reads an ASCII log, integrity-checks it, and encodes the
// binary form. Validation violations arrive batched as a single error.
func AsciiToBinary(r io.Reader, opts Options) ([]byte, error) {
	doc, err := asclog.ReadEncoded(r, opts.InputEncoding)
	if err != nil {
		return nil, err
	}
	p := progress.New("tobin", pipelineStages, opts.Progress)
	p.Set(1, "ascii log read")

	if rep := validate.Check(doc); rep != nil {
		return nil, rep
	}
	p.Set(2, "integrity checks passed")

	data, err := binlog.Encode(doc)
	if err != nil {
		return nil, err
	}
	p.Done("binary log encoded")
	return data, nil
}

// BinaryToAscii decodes binary log bytes, integrity-checks them, and
// renders the ASCII form.
func BinaryToAscii(data []byte, opts Options) (string, error) {
	doc, err := binlog.Decode(data)
	if err != nil {
		return "", err
	}
	p := progress.New("toasc", pipelineStages, opts.Progress)
	p.Set(1, "binary log decoded")

	if rep := validate.Check(doc); rep != nil {
		return "", rep
	}
	p.Set(2, "integrity checks passed")

	var sb strings.Builder
	if err := asclog.WriteColumns(&sb, doc, opts.ColumnWidth); err != nil {
		return "", err
	}
	p.Done("ascii log written")
	return sb.String(), nil
}
