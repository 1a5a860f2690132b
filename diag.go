package swagen

import "fmt"

// Diag carries non-fatal warnings produced while decoding a document or
// generating models. Every warning is local and recoverable by
// omission: a degraded mapping shows up as an untyped field or a
// missing declaration, never a failed run.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type diag struct{ ws []string }

func (d *diag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *diag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *diag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
