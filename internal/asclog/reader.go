package asclog

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/erptools/erplog/pkg/errclass"
	"github.com/erptools/erplog/pkg/model"
)

// Input encodings accepted by ReadEncoded.
const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
)

// Read consumes a full ASCII log and returns the decoded document. The
// first malformed data line aborts the read with its 1-based line number:
// a single corrupt record makes downstream averaging silently wrong, so
// there is no best-effort recovery. Comment lines never fail.
func Read(r io.Reader) (*model.Document, error) {
	return ReadEncoded(r, EncodingUTF8)
}

// ReadEncoded is Read with an explicit input encoding. Latin-1 input is
// transcoded so hand-edited legacy headers survive as valid UTF-8
// comments; the data fields themselves are plain ASCII either way.
func ReadEncoded(r io.Reader, encoding string) (*model.Document, error) {
	switch encoding {
	case "", EncodingUTF8:
	case EncodingLatin1:
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		return nil, errclass.ErrFormatUnsupported.WithMessagef("unknown input encoding %q", encoding)
	}

	doc := &model.Document{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, err := ClassifyLine(scanner.Text())
		if err != nil {
			var cls *errclass.Error
			if errors.As(err, &cls) {
				return nil, cls.WithMessagef("line %d: %s", lineNo, cls.Message)
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		switch line.Kind {
		case LineComment:
			doc.Comments = append(doc.Comments, model.Comment{Text: line.Comment, Before: len(doc.Records)})
		case LineData:
			doc.Records = append(doc.Records, line.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ascii log: %w", err)
	}
	return doc, nil
}
