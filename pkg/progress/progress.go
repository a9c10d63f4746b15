// Package progress provides progress reporting for long conversions.
package progress

// Callback receives progress updates during a conversion stage.
type Callback func(op string, current, total int, message string)

// Noop is a no-op callback for default behavior.
func Noop(op string, current, total int, message string) {}

// Progress tracks one operation.
type Progress struct {
	Op      string
	Total   int
	current int
	cb      Callback
}

// New creates a Progress tracker; a nil callback means no reporting.
func New(op string, total int, cb Callback) *Progress {
	if cb == nil {
		cb = Noop
	}
	return &Progress{Op: op, Total: total, cb: cb}
}

// Set sets the current progress value.
func (p *Progress) Set(current int, message string) {
	p.current = current
	p.cb(p.Op, p.current, p.Total, message)
}

// Done marks the operation as complete.
func (p *Progress) Done(message string) {
	p.current = p.Total
	p.cb(p.Op, p.current, p.Total, message)
}
