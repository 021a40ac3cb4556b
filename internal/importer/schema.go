package importer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Row kinds assigned by the mapper.
const (
	KindDaily        = "daily"
	KindWeekly       = "weekly"
	KindUnrecognized = "unrecognized"
)

// Canonical field names. Every recognized header alias resolves to one of
// these before typing.
const (
	FieldDate       = "date"
	FieldWeekNumber = "week_number"
	FieldStartDate  = "start_date"
	FieldWeightKg   = "weight_kg"
	FieldSteps      = "steps"
)

// fieldAliases maps canonical names to accepted header spellings, in match
// priority order. Keys are compared after lowercasing, trimming and
// space-to-underscore folding.
var fieldAliases = map[string][]string{
	FieldWeekNumber:  {"week_number", "week_no", "week_num", "week"},
	FieldStartDate:   {"start_date", "week_start", "week_start_date", "start"},
	FieldDate:        {"date", "day"},
	FieldWeightKg:    {"weight_kg", "weight", "wt", "bodyweight"},
	FieldSteps:       {"steps", "step_count", "daily_steps"},
	"r_biceps_in":    {"r_biceps_in", "r_biceps", "right_biceps"},
	"l_biceps_in":    {"l_biceps_in", "l_biceps", "left_biceps"},
	"chest_in":       {"chest_in", "chest"},
	"r_thigh_in":     {"r_thigh_in", "r_thigh", "right_thigh"},
	"l_thigh_in":     {"l_thigh_in", "l_thigh", "left_thigh"},
	"waist_navel_in": {"waist_navel_in", "waist_navel", "waist"},
	"sleep_issues":   {"sleep_issues", "sleep"},
	"hunger_issues":  {"hunger_issues", "hunger"},
	"stress_issues":  {"stress_issues", "stress"},
	"diet_score":     {"diet_score", "diet"},
	"workout_score":  {"workout_score", "workout", "training_score"},
}

var dayColumnPattern = regexp.MustCompile(`^day([1-7])_(weight_kg|weight|wt|steps)$`)

// DayValues carries the per-day sub-columns folded into a weekly row.
type DayValues struct {
	WeightKg *float64
	Steps    *int64
}

// DailyCandidate is a daily record proposal awaiting reconciliation.
type DailyCandidate struct {
	Provenance Provenance
	Record     DailyRecord
}

// WeeklyCandidate is a weekly record proposal awaiting reconciliation.
// Days carries the folded day sub-columns (index 1..7) for the inference
// step to unpack.
type WeeklyCandidate struct {
	Provenance   Provenance
	Record       WeeklyRecord
	ExplicitDate *time.Time
	Days         [8]DayValues
}

// MappedRow is the mapper's verdict on one raw row. KeyError non-empty means
// the row's identifying key could not be parsed and the row is rejected.
// For weekly rows, Daily holds the row-level weight/steps payload anchored
// to the row's explicit date column, when one is present.
type MappedRow struct {
	Line        int
	Kind        string
	KeyError    string
	Daily       *DailyCandidate
	Weekly      *WeeklyCandidate
	FieldErrors []FieldError
}

func foldHeaderKey(name string) string {
	folded := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(folded, " ", "_")
}

// canonicalValues resolves the raw header-keyed cells into canonical-keyed
// non-empty values. The first non-empty alias in priority order wins.
func canonicalValues(fields map[string]string) map[string]string {
	folded := make(map[string]string, len(fields))
	for key, value := range fields {
		foldedKey := foldHeaderKey(key)
		if value == "" {
			continue
		}
		if _, taken := folded[foldedKey]; !taken {
			folded[foldedKey] = value
		}
	}

	values := make(map[string]string, len(folded))
	for canonical, aliases := range fieldAliases {
		for _, alias := range aliases {
			if value, present := folded[alias]; present {
				values[canonical] = value
				break
			}
		}
	}

	for foldedKey, value := range folded {
		matches := dayColumnPattern.FindStringSubmatch(foldedKey)
		if matches == nil {
			continue
		}
		column := "steps"
		if matches[2] != "steps" {
			column = "weight_kg"
		}
		values[fmt.Sprintf("day%s_%s", matches[1], column)] = value
	}

	return values
}

// MapRow classifies one raw row and coerces its fields into a typed
// candidate. Pure: coercion failures become FieldErrors on the result, key
// failures become KeyError; nothing aborts.
func MapRow(row RawRow) MappedRow {
	values := canonicalValues(row.Fields)

	if _, hasWeek := values[FieldWeekNumber]; hasWeek {
		return mapWeeklyRow(row, values)
	}
	if _, hasDate := values[FieldDate]; hasDate {
		return mapDailyRow(row, values)
	}
	return MappedRow{Line: row.Line, Kind: KindUnrecognized}
}

func mapDailyRow(row RawRow, values map[string]string) MappedRow {
	mapped := MappedRow{Line: row.Line, Kind: KindDaily}

	date, err := parseDateValue(values[FieldDate])
	if err != nil {
		mapped.KeyError = fmt.Sprintf("invalid date %q: %v", values[FieldDate], err)
		return mapped
	}

	candidate := DailyCandidate{
		Provenance: Provenance{Line: row.Line},
		Record:     DailyRecord{Date: date},
	}
	candidate.Record.WeightKg = coerceField(&mapped, row.Line, FieldWeightKg, values, coercePositiveDecimal)
	candidate.Record.Steps = coerceField(&mapped, row.Line, FieldSteps, values, coerceNonNegativeInt)

	mapped.Daily = &candidate
	return mapped
}

func mapWeeklyRow(row RawRow, values map[string]string) MappedRow {
	mapped := MappedRow{Line: row.Line, Kind: KindWeekly}

	weekRaw := values[FieldWeekNumber]
	week, err := parseIntValue(weekRaw)
	if err != nil || week <= 0 {
		mapped.KeyError = fmt.Sprintf("invalid week_number %q", weekRaw)
		return mapped
	}

	candidate := WeeklyCandidate{
		Provenance: Provenance{Line: row.Line, WeekNumber: int(week)},
		Record:     WeeklyRecord{WeekNumber: int(week)},
	}

	if raw, present := values[FieldStartDate]; present {
		start, err := parseDateValue(raw)
		if err != nil {
			mapped.FieldErrors = append(mapped.FieldErrors, FieldError{
				Line: row.Line, Field: FieldStartDate, Value: raw, Reason: err.Error(),
			})
		} else {
			candidate.Record.StartDate = &start
		}
	}

	coerceInches := func(field string) *float64 {
		return coerceField(&mapped, row.Line, field, values, coercePositiveDecimal)
	}
	candidate.Record.RBicepsIn = coerceInches("r_biceps_in")
	candidate.Record.LBicepsIn = coerceInches("l_biceps_in")
	candidate.Record.ChestIn = coerceInches("chest_in")
	candidate.Record.RThighIn = coerceInches("r_thigh_in")
	candidate.Record.LThighIn = coerceInches("l_thigh_in")
	candidate.Record.WaistNavelIn = coerceInches("waist_navel_in")

	coerceIssue := func(field string) *int {
		return coerceField(&mapped, row.Line, field, values, func(raw string) (*int, error) {
			return coerceScore(raw, 0, 5)
		})
	}
	candidate.Record.SleepIssues = coerceIssue("sleep_issues")
	candidate.Record.HungerIssues = coerceIssue("hunger_issues")
	candidate.Record.StressIssues = coerceIssue("stress_issues")

	coerceAdherence := func(field string) *int {
		return coerceField(&mapped, row.Line, field, values, func(raw string) (*int, error) {
			return coerceScore(raw, 0, 10)
		})
	}
	candidate.Record.DietScore = coerceAdherence("diet_score")
	candidate.Record.WorkoutScore = coerceAdherence("workout_score")

	for day := 1; day <= 7; day++ {
		weightField := fmt.Sprintf("day%d_weight_kg", day)
		stepsField := fmt.Sprintf("day%d_steps", day)
		candidate.Days[day] = DayValues{
			WeightKg: coerceField(&mapped, row.Line, weightField, values, coercePositiveDecimal),
			Steps:    coerceField(&mapped, row.Line, stepsField, values, coerceNonNegativeInt),
		}
	}

	if raw, present := values[FieldDate]; present {
		explicit, err := parseDateValue(raw)
		if err != nil {
			mapped.FieldErrors = append(mapped.FieldErrors, FieldError{
				Line: row.Line, Field: FieldDate, Value: raw, Reason: err.Error(),
			})
		} else {
			candidate.ExplicitDate = &explicit
			daily := DailyCandidate{
				Provenance: Provenance{Line: row.Line, WeekNumber: int(week)},
				Record:     DailyRecord{Date: explicit},
			}
			daily.Record.WeightKg = coerceField(&mapped, row.Line, FieldWeightKg, values, coercePositiveDecimal)
			daily.Record.Steps = coerceField(&mapped, row.Line, FieldSteps, values, coerceNonNegativeInt)
			if daily.Record.WeightKg != nil || daily.Record.Steps != nil {
				mapped.Daily = &daily
			}
		}
	}

	mapped.Weekly = &candidate
	return mapped
}

// coerceField runs coerce over the field's value when present and non-empty,
// attaching a FieldError and returning nil on failure.
func coerceField[T any](mapped *MappedRow, line int, field string, values map[string]string, coerce func(string) (*T, error)) *T {
	raw, present := values[field]
	if !present {
		return nil
	}
	value, err := coerce(raw)
	if err != nil {
		mapped.FieldErrors = append(mapped.FieldErrors, FieldError{
			Line: line, Field: field, Value: raw, Reason: err.Error(),
		})
		return nil
	}
	return value
}
