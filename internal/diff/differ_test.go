package diff

import (
	"testing"

	"github.com/erptools/erplog/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(recs ...model.Record) *model.Document {
	return &model.Document{Records: recs}
}

func TestCompare_Identical(t *testing.T) {
	a := doc(
		model.Record{ItemIndex: 0, EventCode: 10, CondCode: 64, Timestamp: 21},
		model.Record{ItemIndex: 1, EventCode: 11, CondCode: 64, Timestamp: 46},
	)
	b := doc(a.Records...)
	b.Comments = []model.Comment{{Text: "comments differ, records match", Before: 0}}

	res := Compare(a, b)
	assert.True(t, res.Identical)
	assert.Empty(t, res.Changes)
	assert.Equal(t, 2, res.TotalFrom)
	assert.Equal(t, 2, res.TotalTo)
}

func TestCompare_Modified(t *testing.T) {
	a := doc(
		model.Record{ItemIndex: 0, EventCode: 10, CondCode: 64, Timestamp: 21},
		model.Record{ItemIndex: 1, EventCode: 11, CondCode: 64, Timestamp: 46},
	)
	b := doc(
		model.Record{ItemIndex: 0, EventCode: 10, CondCode: 64, Timestamp: 21},
		model.Record{ItemIndex: 1, EventCode: 11, CondCode: 65, Timestamp: 46}, // edited condition
	)

	res := Compare(a, b)
	require.Len(t, res.Changes, 1)
	ch := res.Changes[0]
	assert.Equal(t, ChangeModified, ch.Type)
	assert.Equal(t, 1, ch.Index)
	assert.Equal(t, int64(64), ch.From.CondCode)
	assert.Equal(t, int64(65), ch.To.CondCode)
	assert.False(t, res.Identical)
}

func TestCompare_AddedAndRemoved(t *testing.T) {
	a := doc(
		model.Record{ItemIndex: 0, Timestamp: 10},
		model.Record{ItemIndex: 1, Timestamp: 20},
	)
	b := doc(
		model.Record{ItemIndex: 0, Timestamp: 10},
	)

	res := Compare(a, b)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, ChangeRemoved, res.Changes[0].Type)
	assert.Equal(t, 1, res.Changes[0].Index)

	res = Compare(b, a)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, ChangeAdded, res.Changes[0].Type)
	assert.Equal(t, int64(20), res.Changes[0].To.Timestamp)
}

func TestCompare_Empty(t *testing.T) {
	res := Compare(&model.Document{}, &model.Document{})
	assert.True(t, res.Identical)
}
