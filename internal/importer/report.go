package importer

import "github.com/google/uuid"

// Outcome of one processed row (or reconciled key) in the report.
type Outcome string

const (
	OutcomeAccepted    Outcome = "accepted"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeOverwritten Outcome = "overwritten"
	OutcomeRejected    Outcome = "rejected"
)

// Entry is one line of the import report.
type Entry struct {
	Line        int      `json:"line"`
	Kind        string   `json:"kind"`
	Key         string   `json:"key,omitempty"`
	Outcome     Outcome  `json:"outcome"`
	Reason      string   `json:"reason,omitempty"`
	FieldErrors []string `json:"field_errors,omitempty"`
}

// Report is the full account of one import run. Built in memory, returned
// to the caller, never persisted.
type Report struct {
	BatchID   string   `json:"batch_id"`
	DryRun    bool     `json:"dry_run"`
	TotalRows int      `json:"total_rows"`

	Accepted    int `json:"accepted"`
	Skipped     int `json:"skipped"`
	Overwritten int `json:"overwritten"`
	Rejected    int `json:"rejected"`

	Entries   []Entry  `json:"entries"`
	Conflicts []string `json:"conflicts,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

func NewReport(dryRun bool) *Report {
	return &Report{
		BatchID: uuid.NewString(),
		DryRun:  dryRun,
		Entries: make([]Entry, 0),
	}
}

func (report *Report) Add(entry Entry) {
	report.Entries = append(report.Entries, entry)
	switch entry.Outcome {
	case OutcomeAccepted:
		report.Accepted++
	case OutcomeSkipped:
		report.Skipped++
	case OutcomeOverwritten:
		report.Overwritten++
	case OutcomeRejected:
		report.Rejected++
	}
}

func (report *Report) AddWarning(warning string) {
	report.Warnings = append(report.Warnings, warning)
}

func (report *Report) AddConflict(conflict Conflict) {
	report.Conflicts = append(report.Conflicts, conflict.String())
}
