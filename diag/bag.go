package diag

import (
	"fmt"
	"sort"
)

// Bag collects diagnostics across a phase (lexing, parsing, …) and
// renders them sorted by start position, matching §6's emission rule.
// This plays the role nilan's per-phase []error return plays, but keeps
// severity and lets a phase continue past non-fatal entries.
type Bag struct {
	entries []Diagnostic
	fatal   bool
}

// Add appends a diagnostic, marking the bag as fatal if it is an Error.
func (b *Bag) Add(d Diagnostic) {
	b.entries = append(b.entries, d)
	if d.IsFatal() {
		b.fatal = true
	}
}

// Errorf appends an Error diagnostic at r.
func (b *Bag) Errorf(r Range, format string, args ...any) {
	b.Add(Diagnostic{Severity: Error, Range: r, Message: fmt.Sprintf(format, args...)})
}

// Warnf appends a Warning diagnostic at r.
func (b *Bag) Warnf(r Range, format string, args ...any) {
	b.Add(Diagnostic{Severity: Warning, Range: r, Message: fmt.Sprintf(format, args...)})
}

// Fatal reports whether any Error-severity diagnostic has been added.
func (b *Bag) Fatal() bool { return b.fatal }

// Empty reports whether no diagnostics have been collected at all.
func (b *Bag) Empty() bool { return len(b.entries) == 0 }

// Entries returns the collected diagnostics sorted by start position
// (line, then column); ties keep their insertion order.
func (b *Bag) Entries() []Diagnostic {
	sorted := append([]Diagnostic(nil), b.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, c := sorted[i].Range.Start, sorted[j].Range.Start
		if a.Line != c.Line {
			return a.Line < c.Line
		}
		return a.Column < c.Column
	})
	return sorted
}

// Merge appends every entry of other into b.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.entries = append(b.entries, other.entries...)
	if other.fatal {
		b.fatal = true
	}
}
