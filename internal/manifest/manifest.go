// Package manifest collects the per-file outcomes of one generation run.
// The writer appends entries as it executes the plan; the caller reads the
// finished manifest for reporting. No outcome is ever dropped: every
// planned file appears exactly once.
package manifest

import "fmt"

// Outcome is the result of one planned file.
type Outcome int

const (
	Created Outcome = iota
	Skipped
	Overwritten
	Failed
)

// String returns the outcome name used in reports.
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	case Overwritten:
		return "overwritten"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// State is the overall result of one invocation. Aborted means parsing or
// planning failed before any file was touched.
type State int

const (
	Completed State = iota
	PartiallyCompleted
	Aborted
)

// String returns the state name used in reports.
func (s State) String() string {
	switch s {
	case Completed:
		return "completed"
	case PartiallyCompleted:
		return "partially completed"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Entry records the outcome for one path.
type Entry struct {
	Path    string
	Outcome Outcome
	Err     error // non-nil only when Outcome is Failed
}

// Manifest is the ordered list of per-file outcomes for one run.
type Manifest struct {
	Entries []Entry
}

// Add appends a successful (non-failed) outcome.
func (m *Manifest) Add(path string, outcome Outcome) {
	m.Entries = append(m.Entries, Entry{Path: path, Outcome: outcome})
}

// AddFailure appends a failed outcome with its cause.
func (m *Manifest) AddFailure(path string, err error) {
	m.Entries = append(m.Entries, Entry{Path: path, Outcome: Failed, Err: err})
}

// Count returns the number of entries with the given outcome.
func (m *Manifest) Count(outcome Outcome) int {
	n := 0
	for _, e := range m.Entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// Failures returns the failed entries, in plan order.
func (m *Manifest) Failures() []Entry {
	var out []Entry
	for _, e := range m.Entries {
		if e.Outcome == Failed {
			out = append(out, e)
		}
	}
	return out
}

// State reduces the manifest to the invocation result: PartiallyCompleted
// when any file failed, Completed otherwise.
func (m *Manifest) State() State {
	if m.Count(Failed) > 0 {
		return PartiallyCompleted
	}
	return Completed
}
