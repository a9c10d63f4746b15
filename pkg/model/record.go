// Package model defines the in-memory representation of an event log.
package model

import "github.com/erptools/erplog/pkg/errclass"

// Record is one trial event entry in the log.
//
// EventCode is signed: negative codes denote synthetic/system events
// (pause marks, delete marks), non-negative codes denote stimulus and
// response events. CondCode is an experiment-defined trial classification
// treated as an opaque integer. Flags is an opaque bitmask, rendered in
// octal in the ASCII form. Timestamp counts sample-clock ticks since
// acquisition start; divided by the sampling rate it gives seconds in the
// raw-signal file's time domain.
type Record struct {
	ItemIndex int64 `json:"item_index"`
	EventCode int64 `json:"event_code"`
	CondCode  int64 `json:"condition_code"`
	Flags     int64 `json:"flags"`
	Timestamp int64 `json:"timestamp"`
}

// NewRecord constructs a Record, rejecting negative values in the fields
// neither representation can express.
func NewRecord(itemIndex, eventCode, condCode, flags, timestamp int64) (Record, error) {
	switch {
	case itemIndex < 0:
		return Record{}, errclass.ErrInvalidRecord.WithMessagef("item_index must be non-negative, got %d", itemIndex)
	case condCode < 0:
		return Record{}, errclass.ErrInvalidRecord.WithMessagef("condition_code must be non-negative, got %d", condCode)
	case flags < 0:
		return Record{}, errclass.ErrInvalidRecord.WithMessagef("flags must be non-negative, got %d", flags)
	case timestamp < 0:
		return Record{}, errclass.ErrInvalidRecord.WithMessagef("timestamp must be non-negative, got %d", timestamp)
	}
	return Record{
		ItemIndex: itemIndex,
		EventCode: eventCode,
		CondCode:  condCode,
		Flags:     flags,
		Timestamp: timestamp,
	}, nil
}
