package importer

import "fmt"

// ConflictPolicy decides which value survives when two candidates for the
// same key both carry a field, with different values.
type ConflictPolicy string

const (
	// PolicyLastWins keeps the value from the candidate parsed later in
	// file order. Default.
	PolicyLastWins ConflictPolicy = "last-wins"
	// PolicyFirstWins keeps the value first seen.
	PolicyFirstWins ConflictPolicy = "first-wins"
)

func ParseConflictPolicy(raw string) (ConflictPolicy, error) {
	switch ConflictPolicy(raw) {
	case "":
		return PolicyLastWins, nil
	case PolicyLastWins:
		return PolicyLastWins, nil
	case PolicyFirstWins:
		return PolicyFirstWins, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownConflictPolicy, raw)
}

// Conflict is a reportable overwrite between two candidates for one key.
// Not an error: the merge proceeded, this is the audit trail.
type Conflict struct {
	Kind      string
	Key       string
	Field     string
	Kept      Provenance
	Discarded Provenance
}

func (conflict Conflict) String() string {
	return fmt.Sprintf("%s %s field %s: line %d value kept over line %d",
		conflict.Kind, conflict.Key, conflict.Field, conflict.Kept.Line, conflict.Discarded.Line)
}

// MergedDaily is one reconciled daily record; First is the earliest
// contributing provenance, used as the report anchor for the key. Lines
// lists every source line that contributed to the key, in merge order.
type MergedDaily struct {
	Record DailyRecord
	First  Provenance
	Lines  []int
}

// MergedWeekly is one reconciled weekly record.
type MergedWeekly struct {
	Record WeeklyRecord
	First  Provenance
	Lines  []int
}

// conflictRecorder resolves one candidate against the merged record it
// collides with. owners maps each field to the provenance of its current
// value, so successive overwrites are audited against the line that
// actually supplied the displaced value, not the key's first line.
type conflictRecorder struct {
	kind      string
	key       string
	first     Provenance
	incoming  Provenance
	owners    map[string]Provenance
	policy    ConflictPolicy
	conflicts *[]Conflict
}

// resolve records the overwrite and reports whether the incoming value
// should replace the existing one.
func (recorder *conflictRecorder) resolve(field string) bool {
	existing, owned := recorder.owners[field]
	if !owned {
		existing = recorder.first
	}
	keepIncoming := recorder.policy != PolicyFirstWins
	kept, discarded := recorder.incoming, existing
	if !keepIncoming {
		kept, discarded = existing, recorder.incoming
	}
	*recorder.conflicts = append(*recorder.conflicts, Conflict{
		Kind:      recorder.kind,
		Key:       recorder.key,
		Field:     field,
		Kept:      kept,
		Discarded: discarded,
	})
	if keepIncoming {
		recorder.owners[field] = recorder.incoming
	}
	return keepIncoming
}

// mergeOptional applies the per-field override rule: non-nil beats nil
// without comment, equal values merge silently, and a genuine disagreement
// goes to the policy.
func mergeOptional[T comparable](dst **T, src *T, field string, recorder *conflictRecorder) {
	if src == nil {
		return
	}
	if *dst == nil {
		value := *src
		*dst = &value
		recorder.owners[field] = recorder.incoming
		return
	}
	if **dst == *src {
		return
	}
	if recorder.resolve(field) {
		value := *src
		*dst = &value
	}
}

// ReconcileDailies folds all daily candidates into one record per date, in
// first-appearance order. Candidates must arrive in file order; the slice
// order is the tie-break order the policy acts on.
func ReconcileDailies(candidates []DailyCandidate, policy ConflictPolicy) ([]MergedDaily, []Conflict) {
	conflicts := make([]Conflict, 0)
	merged := make([]MergedDaily, 0, len(candidates))
	byKey := make(map[string]int, len(candidates))
	owners := make([]map[string]Provenance, 0, len(candidates))

	for _, candidate := range candidates {
		key := DateKey(candidate.Record.Date)
		index, seen := byKey[key]
		if !seen {
			byKey[key] = len(merged)
			merged = append(merged, MergedDaily{
				Record: candidate.Record,
				First:  candidate.Provenance,
				Lines:  []int{candidate.Provenance.Line},
			})
			owners = append(owners, make(map[string]Provenance))
			continue
		}

		merged[index].Lines = append(merged[index].Lines, candidate.Provenance.Line)
		recorder := &conflictRecorder{
			kind:      KindDaily,
			key:       key,
			first:     merged[index].First,
			incoming:  candidate.Provenance,
			owners:    owners[index],
			policy:    policy,
			conflicts: &conflicts,
		}
		mergeOptional(&merged[index].Record.WeightKg, candidate.Record.WeightKg, FieldWeightKg, recorder)
		mergeOptional(&merged[index].Record.Steps, candidate.Record.Steps, FieldSteps, recorder)
	}

	return merged, conflicts
}

// ReconcileWeeklies folds all weekly candidates into one record per week
// number, in first-appearance order.
func ReconcileWeeklies(candidates []WeeklyCandidate, policy ConflictPolicy) ([]MergedWeekly, []Conflict) {
	conflicts := make([]Conflict, 0)
	merged := make([]MergedWeekly, 0, len(candidates))
	byKey := make(map[int]int, len(candidates))
	owners := make([]map[string]Provenance, 0, len(candidates))

	for _, candidate := range candidates {
		key := candidate.Record.WeekNumber
		index, seen := byKey[key]
		if !seen {
			byKey[key] = len(merged)
			merged = append(merged, MergedWeekly{
				Record: candidate.Record,
				First:  candidate.Provenance,
				Lines:  []int{candidate.Provenance.Line},
			})
			owners = append(owners, make(map[string]Provenance))
			continue
		}

		merged[index].Lines = append(merged[index].Lines, candidate.Provenance.Line)
		recorder := &conflictRecorder{
			kind:      KindWeekly,
			key:       fmt.Sprintf("week %d", key),
			first:     merged[index].First,
			incoming:  candidate.Provenance,
			owners:    owners[index],
			policy:    policy,
			conflicts: &conflicts,
		}

		mergeStartDate(&merged[index], candidate, recorder)

		mergeOptional(&merged[index].Record.RBicepsIn, candidate.Record.RBicepsIn, "r_biceps_in", recorder)
		mergeOptional(&merged[index].Record.LBicepsIn, candidate.Record.LBicepsIn, "l_biceps_in", recorder)
		mergeOptional(&merged[index].Record.ChestIn, candidate.Record.ChestIn, "chest_in", recorder)
		mergeOptional(&merged[index].Record.RThighIn, candidate.Record.RThighIn, "r_thigh_in", recorder)
		mergeOptional(&merged[index].Record.LThighIn, candidate.Record.LThighIn, "l_thigh_in", recorder)
		mergeOptional(&merged[index].Record.WaistNavelIn, candidate.Record.WaistNavelIn, "waist_navel_in", recorder)
		mergeOptional(&merged[index].Record.SleepIssues, candidate.Record.SleepIssues, "sleep_issues", recorder)
		mergeOptional(&merged[index].Record.HungerIssues, candidate.Record.HungerIssues, "hunger_issues", recorder)
		mergeOptional(&merged[index].Record.StressIssues, candidate.Record.StressIssues, "stress_issues", recorder)
		mergeOptional(&merged[index].Record.DietScore, candidate.Record.DietScore, "diet_score", recorder)
		mergeOptional(&merged[index].Record.WorkoutScore, candidate.Record.WorkoutScore, "workout_score", recorder)
	}

	return merged, conflicts
}

func mergeStartDate(existing *MergedWeekly, candidate WeeklyCandidate, recorder *conflictRecorder) {
	incoming := candidate.Record.StartDate
	if incoming == nil {
		return
	}
	if existing.Record.StartDate == nil {
		value := *incoming
		existing.Record.StartDate = &value
		recorder.owners[FieldStartDate] = recorder.incoming
		return
	}
	if existing.Record.StartDate.Equal(*incoming) {
		return
	}
	if recorder.resolve(FieldStartDate) {
		value := *incoming
		existing.Record.StartDate = &value
	}
}
