package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erptools/erplog/internal/asclog"
	"github.com/erptools/erplog/internal/binlog"
	"github.com/erptools/erplog/internal/validate"
	"github.com/erptools/erplog/pkg/errclass"
	"github.com/erptools/erplog/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleText(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "asclog", "testdata", "sample.asc"))
	require.NoError(t, err)
	return string(data)
}

func TestAsciiToBinary_Sample(t *testing.T) {
	data, err := AsciiToBinary(strings.NewReader(sampleText(t)), Options{})
	require.NoError(t, err)

	doc, err := binlog.Decode(data)
	require.NoError(t, err)
	require.Len(t, doc.Records, 29)
	assert.Equal(t, model.Record{ItemIndex: 0, EventCode: -1522, CondCode: 64, Flags: 0, Timestamp: 21}, doc.Records[0])
	assert.Equal(t, model.Record{ItemIndex: 9, EventCode: -16384, CondCode: 64, Flags: 0, Timestamp: 511}, doc.Records[9])
}

func TestRoundTrip_BothDirections(t *testing.T) {
	text := sampleText(t)

	binData, err := AsciiToBinary(strings.NewReader(text), Options{})
	require.NoError(t, err)

	ascOut, err := BinaryToAscii(binData, Options{})
	require.NoError(t, err)

	// Comments cannot survive the binary form, but the record sequence
	// must be identical.
	orig, err := asclog.Read(strings.NewReader(text))
	require.NoError(t, err)
	back, err := asclog.Read(strings.NewReader(ascOut))
	require.NoError(t, err)
	assert.True(t, orig.Equal(back))
	assert.Empty(t, back.Comments)

	// And converting the regenerated ASCII again yields identical bytes.
	binData2, err := AsciiToBinary(strings.NewReader(ascOut), Options{})
	require.NoError(t, err)
	assert.Equal(t, binData, binData2)
}

func TestAsciiToBinary_ValidationBatch(t *testing.T) {
	// One index gap and one time reversal: both findings must surface in
	// the single returned error.
	input := strings.Join([]string{
		"0 10 64 0 100",
		"2 11 64 0 200",
		"2 12 64 0 150",
	}, "\n")

	_, err := AsciiToBinary(strings.NewReader(input), Options{})
	require.Error(t, err)

	var rep *validate.Report
	require.True(t, errors.As(err, &rep))
	assert.Len(t, rep.Findings, 2)
	assert.True(t, errors.Is(err, errclass.ErrNonContiguousIndex))
	assert.True(t, errors.Is(err, errclass.ErrNonMonotonicTimestamp))
}

func TestAsciiToBinary_MalformedLineFailsFast(t *testing.T) {
	input := "0 10 64 0 100\nnot a problem, comments are fine\n2 11 64 08 200\n"

	_, err := AsciiToBinary(strings.NewReader(input), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrMalformedFlags))
	assert.Contains(t, err.Error(), "line 3")
}

func TestBinaryToAscii_RejectsGarbage(t *testing.T) {
	_, err := BinaryToAscii([]byte("this is not a binary log"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrFormatUnsupported))
}

func TestBinaryToAscii_ValidatesDecodedDocument(t *testing.T) {
	// A structurally valid binary log can still violate monotonicity;
	// the validator must catch it before ASCII is produced.
	doc := &model.Document{Records: []model.Record{
		{ItemIndex: 0, EventCode: 1, CondCode: 64, Timestamp: 500},
		{ItemIndex: 1, EventCode: 2, CondCode: 64, Timestamp: 499},
	}}
	data, err := binlog.Encode(doc)
	require.NoError(t, err)

	_, err = BinaryToAscii(data, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrNonMonotonicTimestamp))
}

func TestOptions_ProgressStages(t *testing.T) {
	var stages []int
	var messages []string
	opts := Options{Progress: func(op string, current, total int, message string) {
		assert.Equal(t, "tobin", op)
		assert.Equal(t, pipelineStages, total)
		stages = append(stages, current)
		messages = append(messages, message)
	}}

	data, err := AsciiToBinary(strings.NewReader("0 10 64 0 100\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, stages)
	assert.Equal(t, []string{"ascii log read", "integrity checks passed", "binary log encoded"}, messages)

	var back []string
	opts = Options{Progress: func(op string, current, total int, message string) {
		back = append(back, op)
	}}
	_, err = BinaryToAscii(data, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"toasc", "toasc", "toasc"}, back)
}
