// Package diff compares two event logs record by record, supporting the
// hand-editing workflow the ASCII form exists for.
package diff

import (
	"github.com/erptools/erplog/pkg/model"
)

// ChangeType represents the type of record change.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

// Change is a single per-position difference between two logs.
type Change struct {
	Index int           `json:"index"`
	Type  ChangeType    `json:"type"`
	From  *model.Record `json:"from,omitempty"`
	To    *model.Record `json:"to,omitempty"`
}

// Result is the outcome of comparing two logs.
type Result struct {
	Identical bool     `json:"identical"`
	TotalFrom int      `json:"total_from"`
	TotalTo   int      `json:"total_to"`
	Changes   []Change `json:"changes,omitempty"`
}

// Compare reports per-position differences between two documents.
// Records are matched by position, the stable identity the averaging
// pipeline aligns on; comments are presentation only and are ignored.
func Compare(from, to *model.Document) *Result {
	res := &Result{
		TotalFrom: len(from.Records),
		TotalTo:   len(to.Records),
	}

	n := len(from.Records)
	if len(to.Records) > n {
		n = len(to.Records)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(from.Records):
			rec := to.Records[i]
			res.Changes = append(res.Changes, Change{Index: i, Type: ChangeAdded, To: &rec})
		case i >= len(to.Records):
			rec := from.Records[i]
			res.Changes = append(res.Changes, Change{Index: i, Type: ChangeRemoved, From: &rec})
		case from.Records[i] != to.Records[i]:
			f, t := from.Records[i], to.Records[i]
			res.Changes = append(res.Changes, Change{Index: i, Type: ChangeModified, From: &f, To: &t})
		}
	}

	res.Identical = len(res.Changes) == 0
	return res
}
