package model

// Comment is a verbatim non-data line retained for round-trip fidelity.
// Before is the number of records preceding it in the source, so a
// comment with Before == len(Records) sits after the last data line.
// Comments carry no semantic weight but must not be silently dropped.
type Comment struct {
	Text   string `json:"text"`
	Before int    `json:"before"`
}

// Document is an ordered record sequence plus retained comment lines.
// A Document is constructed fresh by a reader and is not mutated by the
// converter; editing is an external, human activity on the ASCII text.
type Document struct {
	Records  []Record  `json:"records"`
	Comments []Comment `json:"comments,omitempty"`
}

// Equal reports whether two documents carry the same record sequence.
// Comments are presentation only and do not participate.
func (d *Document) Equal(other *Document) bool {
	if len(d.Records) != len(other.Records) {
		return false
	}
	for i := range d.Records {
		if d.Records[i] != other.Records[i] {
			return false
		}
	}
	return true
}
