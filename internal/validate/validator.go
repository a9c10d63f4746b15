// Package validate runs the cross-record integrity checks that protect
// alignment between the event log and the raw-signal file. Hand-edits
// that stay locally well-formed can still desynchronize the two files;
// these checks catch the detectable cases (index gaps, time reversals)
// and report all of them at once so an editor sees the complete list.
package validate

import (
	"fmt"
	"strings"

	"github.com/erptools/erplog/pkg/errclass"
	"github.com/erptools/erplog/pkg/model"
)

// Finding is one detected integrity violation.
type Finding struct {
	Class       *errclass.Error `json:"-"`
	Code        string          `json:"code"`
	Index       int             `json:"index"`
	Description string          `json:"description"`
}

// Report collects every violation found in a single pass. It implements
// error, and errors.Is matches the class of any contained finding.
type Report struct {
	Findings []Finding `json:"findings"`
}

func (r *Report) Error() string {
	msgs := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		msgs[i] = fmt.Sprintf("%s at index %d: %s", f.Code, f.Index, f.Description)
	}
	return fmt.Sprintf("%d integrity violation(s): %s", len(r.Findings), strings.Join(msgs, "; "))
}

func (r *Report) Is(target error) bool {
	t, ok := target.(*errclass.Error)
	if !ok {
		return false
	}
	for _, f := range r.Findings {
		if f.Class.Code == t.Code {
			return true
		}
	}
	return false
}

func (r *Report) add(class *errclass.Error, index int, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Class:       class,
		Code:        class.Code,
		Index:       index,
		Description: fmt.Sprintf(format, args...),
	})
}

// Check validates the whole document and returns a Report of every
// violation, or nil when the document is clean. It never repairs.
func Check(doc *model.Document) *Report {
	rep := &Report{}
	for i, rec := range doc.Records {
		if rec.ItemIndex != int64(i) {
			rep.add(errclass.ErrNonContiguousIndex, i, "item_index %d at position %d", rec.ItemIndex, i)
		}
		if i > 0 && rec.Timestamp < doc.Records[i-1].Timestamp {
			rep.add(errclass.ErrNonMonotonicTimestamp, i, "timestamp %d follows %d", rec.Timestamp, doc.Records[i-1].Timestamp)
		}
		// Re-asserted defensively; construction already rejects these.
		if rec.CondCode < 0 {
			rep.add(errclass.ErrInvalidRecord, i, "condition_code %d is negative", rec.CondCode)
		}
		if rec.Flags < 0 {
			rep.add(errclass.ErrInvalidRecord, i, "flags %d is negative", rec.Flags)
		}
	}
	if len(rep.Findings) == 0 {
		return nil
	}
	return rep
}
