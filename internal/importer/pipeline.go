package importer

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Options configures one import run.
type Options struct {
	// DryRun computes the full report without touching the store.
	DryRun bool
	// ConflictPolicy defaults to last-wins when empty.
	ConflictPolicy ConflictPolicy
	// Timeout bounds the whole call when positive. Upserts committed
	// before the deadline stand.
	Timeout time.Duration
}

// Pipeline drives parse → map → infer → reconcile → upsert for one store.
// Concurrent imports against the same pipeline serialize on the upsert
// phase; parsing and reconciliation run outside the lock.
type Pipeline struct {
	store Store
	mu    sync.Mutex
}

func NewPipeline(store Store) *Pipeline {
	return &Pipeline{store: store}
}

// ImportFile runs the whole import. Only two conditions surface as errors:
// a structurally unusable file (ErrParse, nothing written) and a deadline
// hit (ErrTimeout, committed upserts stand). Everything else — skipped
// rows, coercion failures, key rejections, per-record persist failures —
// comes back as data in the report.
func (pipeline *Pipeline) ImportFile(ctx context.Context, data []byte, opts Options) (*Report, error) {
	policy, err := ParseConflictPolicy(string(opts.ConflictPolicy))
	if err != nil {
		return nil, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	report := NewReport(opts.DryRun)

	_, rows, err := ParseCSV(data)
	if err != nil {
		return nil, err
	}
	report.TotalRows = len(rows)

	dailies := make([]DailyCandidate, 0, len(rows))
	weeklies := make([]WeeklyCandidate, 0)
	fieldErrorsByLine := make(map[int][]string)

	for _, row := range rows {
		mapped := MapRow(row)

		for _, fieldError := range mapped.FieldErrors {
			fieldErrorsByLine[mapped.Line] = append(fieldErrorsByLine[mapped.Line], fieldError.Error())
		}

		switch {
		case mapped.Kind == KindUnrecognized:
			report.Add(Entry{
				Line:    mapped.Line,
				Kind:    KindUnrecognized,
				Outcome: OutcomeSkipped,
				Reason:  "row has neither a date nor a week number",
			})
		case mapped.KeyError != "":
			report.Add(Entry{
				Line:        mapped.Line,
				Kind:        mapped.Kind,
				Outcome:     OutcomeRejected,
				Reason:      mapped.KeyError,
				FieldErrors: fieldErrorsByLine[mapped.Line],
			})
		case mapped.Kind == KindDaily:
			dailies = append(dailies, *mapped.Daily)
		case mapped.Kind == KindWeekly:
			weeklies = append(weeklies, *mapped.Weekly)

			derived, warnings := DeriveDailyCandidates(mapped.Weekly)
			dailies = append(dailies, derived...)
			for _, warning := range warnings {
				report.AddWarning(warning)
			}
			// Row-level weight/steps anchored to the row's explicit
			// date come after the derived days so they win the
			// tie-break under the default policy.
			if mapped.Daily != nil {
				dailies = append(dailies, *mapped.Daily)
			}
		}
	}

	mergedDailies, dailyConflicts := ReconcileDailies(dailies, policy)
	mergedWeeklies, weeklyConflicts := ReconcileWeeklies(weeklies, policy)
	for _, conflict := range dailyConflicts {
		report.AddConflict(conflict)
	}
	for _, conflict := range weeklyConflicts {
		report.AddConflict(conflict)
	}

	snapshot, err := pipeline.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read store snapshot: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("%w: before upsert phase", ErrTimeout)
	}

	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()

	for _, merged := range mergedWeeklies {
		entry := Entry{
			Line:        merged.First.Line,
			Kind:        KindWeekly,
			Key:         fmt.Sprintf("week %d", merged.Record.WeekNumber),
			FieldErrors: collectFieldErrors(merged.Lines, fieldErrorsByLine),
		}
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%w: during weekly upserts", ErrTimeout)
		}

		_, exists := snapshot.WeekNumbers[merged.Record.WeekNumber]
		entry.Outcome = OutcomeAccepted
		if exists {
			entry.Outcome = OutcomeOverwritten
		}

		if !opts.DryRun {
			if err := pipeline.store.UpsertWeekly(merged.Record); err != nil {
				entry.Outcome = OutcomeRejected
				entry.Reason = fmt.Sprintf("persist: %v", err)
			}
		}
		report.Add(entry)
	}

	for _, merged := range mergedDailies {
		entry := Entry{
			Line:        merged.First.Line,
			Kind:        KindDaily,
			Key:         DateKey(merged.Record.Date),
			FieldErrors: collectFieldErrors(merged.Lines, fieldErrorsByLine),
		}
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%w: during daily upserts", ErrTimeout)
		}

		_, exists := snapshot.DailyDates[DateKey(merged.Record.Date)]
		entry.Outcome = OutcomeAccepted
		if exists {
			entry.Outcome = OutcomeOverwritten
		}

		if !opts.DryRun {
			if err := pipeline.store.UpsertDaily(merged.Record); err != nil {
				entry.Outcome = OutcomeRejected
				entry.Reason = fmt.Sprintf("persist: %v", err)
			}
		}
		report.Add(entry)
	}

	return report, nil
}

// collectFieldErrors gathers the field errors of every line that contributed
// to a merged key. Derived days repeat their source line; each line's errors
// are attached once.
func collectFieldErrors(lines []int, byLine map[int][]string) []string {
	var collected []string
	seen := make(map[int]struct{}, len(lines))
	for _, line := range lines {
		if _, done := seen[line]; done {
			continue
		}
		seen[line] = struct{}{}
		collected = append(collected, byLine[line]...)
	}
	return collected
}
