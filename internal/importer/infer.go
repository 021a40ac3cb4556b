package importer

import "fmt"

// DeriveDailyCandidates unpacks a weekly row's day sub-columns into one
// daily candidate per populated day: day i lands on start_date + (i-1)
// days. Pure calendar addition in the file's date space; no time of day,
// no timezone.
//
// When start_date is missing the expansion is skipped with a warning and
// the weekly row itself still stands. A row-level explicit date is handled
// by the mapper and never moves the derived days.
func DeriveDailyCandidates(weekly *WeeklyCandidate) ([]DailyCandidate, []string) {
	populated := 0
	for day := 1; day <= 7; day++ {
		if weekly.Days[day].WeightKg != nil || weekly.Days[day].Steps != nil {
			populated++
		}
	}

	if weekly.Record.StartDate == nil {
		if populated == 0 {
			return nil, nil
		}
		warning := fmt.Sprintf(
			"line %d: week %d has day columns but no start_date; %d day values not expanded",
			weekly.Provenance.Line, weekly.Record.WeekNumber, populated,
		)
		return nil, []string{warning}
	}

	start := *weekly.Record.StartDate
	warnings := []string(nil)
	if weekly.ExplicitDate != nil {
		weekEnd := start.AddDate(0, 0, 6)
		if weekly.ExplicitDate.Before(start) || weekly.ExplicitDate.After(weekEnd) {
			warnings = append(warnings, fmt.Sprintf(
				"line %d: explicit date %s falls outside week %d (%s..%s); explicit date kept",
				weekly.Provenance.Line, DateKey(*weekly.ExplicitDate), weekly.Record.WeekNumber,
				DateKey(start), DateKey(weekEnd),
			))
		}
	}

	candidates := make([]DailyCandidate, 0, populated)
	for day := 1; day <= 7; day++ {
		values := weekly.Days[day]
		if values.WeightKg == nil && values.Steps == nil {
			continue
		}
		candidates = append(candidates, DailyCandidate{
			Provenance: Provenance{
				Line:       weekly.Provenance.Line,
				WeekNumber: weekly.Record.WeekNumber,
				DayIndex:   day,
			},
			Record: DailyRecord{
				Date:     start.AddDate(0, 0, day-1),
				WeightKg: values.WeightKg,
				Steps:    values.Steps,
			},
		})
	}
	return candidates, warnings
}
