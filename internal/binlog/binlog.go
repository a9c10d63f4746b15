// Package binlog implements the fixed-layout binary event log consumed
// by the averaging program.
//
// The layout is little-endian, version 1:
//
//	header, 12 bytes: magic "ERPL", format version uint16,
//	                  reserved uint16 (zero), record count uint32
//	record, 16 bytes: item_index uint32, event_code int32,
//	                  condition_code uint16, flags uint16, timestamp uint32
//
// Item indices are stored redundantly with position and cross-checked on
// decode. The layout is a frozen external contract: the golden bytes in
// this package's tests pin it, and any change requires a version bump.
package binlog

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/erptools/erplog/pkg/errclass"
	"github.com/erptools/erplog/pkg/model"
)

const (
	// FormatVersion is the current binary format version.
	FormatVersion = 1

	// HeaderSize and RecordSize are fixed by the layout above.
	HeaderSize = 12
	RecordSize = 16
)

var magic = [4]byte{'E', 'R', 'P', 'L'}

// IsBinary reports whether data starts with the binary log magic. Used
// to sniff which representation a file holds.
func IsBinary(data []byte) bool {
	return len(data) >= len(magic) && bytes.Equal(data[:len(magic)], magic[:])
}

// Encode serializes the document's records. Comments are an ASCII-only
// concern and have no binary representation. Encoding fails only when a
// field exceeds its storage width.
func Encode(doc *model.Document) ([]byte, error) {
	if int64(len(doc.Records)) > math.MaxUint32 {
		return nil, errclass.ErrRecordOutOfRange.WithMessagef("record count %d does not fit uint32", len(doc.Records))
	}

	buf := make([]byte, HeaderSize+RecordSize*len(doc.Records))
	copy(buf[0:4], magic[:])
	binary.LittleEndian.PutUint16(buf[4:6], FormatVersion)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(doc.Records)))

	for i, rec := range doc.Records {
		if err := checkRange(i, rec); err != nil {
			return nil, err
		}
		off := HeaderSize + i*RecordSize
		binary.LittleEndian.PutUint32(buf[off:], uint32(rec.ItemIndex))
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(int32(rec.EventCode)))
		binary.LittleEndian.PutUint16(buf[off+8:], uint16(rec.CondCode))
		binary.LittleEndian.PutUint16(buf[off+10:], uint16(rec.Flags))
		binary.LittleEndian.PutUint32(buf[off+12:], uint32(rec.Timestamp))
	}
	return buf, nil
}

func checkRange(pos int, rec model.Record) error {
	switch {
	case rec.ItemIndex < 0 || rec.ItemIndex > math.MaxUint32:
		return errclass.ErrRecordOutOfRange.WithMessagef("record %d: item_index %d does not fit uint32", pos, rec.ItemIndex)
	case rec.EventCode < math.MinInt32 || rec.EventCode > math.MaxInt32:
		return errclass.ErrRecordOutOfRange.WithMessagef("record %d: event_code %d does not fit int32", pos, rec.EventCode)
	case rec.CondCode < 0 || rec.CondCode > math.MaxUint16:
		return errclass.ErrRecordOutOfRange.WithMessagef("record %d: condition_code %d does not fit uint16", pos, rec.CondCode)
	case rec.Flags < 0 || rec.Flags > math.MaxUint16:
		return errclass.ErrRecordOutOfRange.WithMessagef("record %d: flags %d does not fit uint16", pos, rec.Flags)
	case rec.Timestamp < 0 || rec.Timestamp > math.MaxUint32:
		return errclass.ErrRecordOutOfRange.WithMessagef("record %d: timestamp %d does not fit uint32", pos, rec.Timestamp)
	}
	return nil
}

// Decode parses binary log bytes into a document. Stored item indices
// must agree with record positions.
func Decode(data []byte) (*model.Document, error) {
	if len(data) < HeaderSize {
		return nil, errclass.ErrTruncatedLog.WithMessagef("log shorter than the %d-byte header: %d bytes", HeaderSize, len(data))
	}
	if !IsBinary(data) {
		return nil, errclass.ErrFormatUnsupported.WithMessagef("bad magic %q", data[0:4])
	}
	if version := binary.LittleEndian.Uint16(data[4:6]); version != FormatVersion {
		return nil, errclass.ErrFormatUnsupported.WithMessagef("format version %d, supported %d", version, FormatVersion)
	}

	count := int(binary.LittleEndian.Uint32(data[8:12]))
	if want := HeaderSize + count*RecordSize; len(data) != want {
		return nil, errclass.ErrTruncatedLog.WithMessagef("header declares %d records (%d bytes total), got %d bytes", count, want, len(data))
	}

	doc := &model.Document{Records: make([]model.Record, 0, count)}
	for i := 0; i < count; i++ {
		off := HeaderSize + i*RecordSize
		idx := int64(binary.LittleEndian.Uint32(data[off:]))
		if idx != int64(i) {
			return nil, errclass.ErrIndexMismatch.WithMessagef("record %d: stored item_index %d", i, idx)
		}
		doc.Records = append(doc.Records, model.Record{
			ItemIndex: idx,
			EventCode: int64(int32(binary.LittleEndian.Uint32(data[off+4:]))),
			CondCode:  int64(binary.LittleEndian.Uint16(data[off+8:])),
			Flags:     int64(binary.LittleEndian.Uint16(data[off+10:])),
			Timestamp: int64(binary.LittleEndian.Uint32(data[off+12:])),
		})
	}
	return doc, nil
}
