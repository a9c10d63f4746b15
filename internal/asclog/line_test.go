package asclog

import (
	"errors"
	"testing"

	"github.com/erptools/erplog/pkg/errclass"
	"github.com/erptools/erplog/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine_Comments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty line", ""},
		{"whitespace only", "   \t  "},
		{"plain text", "subject s042, semrel04 session 1"},
		{"leading whitespace then text", "   pause mark follows"},
		{"hash marker", "# anything goes here"},
		// A leading '-' is not a digit, so the line is a comment even if
		// the rest looks numeric.
		{"leading minus", "-5 1 1 0 5"},
		{"leading dot", ".5 1 1 0 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := ClassifyLine(tt.text)
			require.NoError(t, err)
			assert.Equal(t, LineComment, line.Kind)
			assert.Equal(t, tt.text, line.Comment, "comment text must be verbatim")
		})
	}
}

func TestClassifyLine_Data(t *testing.T) {
	line, err := ClassifyLine("3         20375     64        0         304")
	require.NoError(t, err)
	require.Equal(t, LineData, line.Kind)
	assert.Equal(t, model.Record{ItemIndex: 3, EventCode: 20375, CondCode: 64, Flags: 0, Timestamp: 304}, line.Record)
}

func TestClassifyLine_NegativeEventCode(t *testing.T) {
	line, err := ClassifyLine("0 -1522 64 0 21")
	require.NoError(t, err)
	require.Equal(t, LineData, line.Kind)
	assert.Equal(t, model.Record{ItemIndex: 0, EventCode: -1522, CondCode: 64, Flags: 0, Timestamp: 21}, line.Record)
}

func TestClassifyLine_LeadingWhitespaceData(t *testing.T) {
	line, err := ClassifyLine("  9 -16384 64 0 511  ")
	require.NoError(t, err)
	require.Equal(t, LineData, line.Kind)
	assert.Equal(t, model.Record{ItemIndex: 9, EventCode: -16384, CondCode: 64, Flags: 0, Timestamp: 511}, line.Record)
}

func TestClassifyLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *errclass.Error
	}{
		{"four fields", "0 10 64 0", errclass.ErrMalformedLine},
		{"six fields", "0 10 64 0 21 99", errclass.ErrMalformedLine},
		{"non-decimal event code", "0 abc 64 0 21", errclass.ErrMalformedLine},
		{"non-decimal condition", "0 10 6x 0 21", errclass.ErrMalformedLine},
		{"non-decimal timestamp", "0 10 64 0 2.5", errclass.ErrMalformedLine},
		{"negative timestamp", "0 10 64 0 -21", errclass.ErrMalformedLine},
		{"flags with digit 8", "0 10 64 08 21", errclass.ErrMalformedFlags},
		{"flags with hex prefix", "0 10 64 0x1 21", errclass.ErrMalformedFlags},
		{"negative flags", "0 10 64 -1 21", errclass.ErrMalformedFlags},
		{"negative condition", "0 10 -1 0 21", errclass.ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ClassifyLine(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "want %s, got %v", tt.want.Code, err)
		})
	}
}
