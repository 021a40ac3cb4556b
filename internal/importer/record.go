// Package importer reconciles a Progress Sheet CSV export into normalized
// daily and weekly records and drives them through a persistence port.
package importer

import "time"

const dateLayout = "2006-01-02"

// DailyRecord is one calendar day of imported data. Nil fields were absent
// from the source and must not overwrite stored values.
type DailyRecord struct {
	Date     time.Time
	WeightKg *float64
	Steps    *int64
}

// WeeklyRecord is one check-in week of imported data, keyed by week number.
// A nil StartDate means the source row never carried one; like every other
// nil field it must leave the stored value untouched.
type WeeklyRecord struct {
	WeekNumber int
	StartDate  *time.Time

	RBicepsIn    *float64
	LBicepsIn    *float64
	ChestIn      *float64
	RThighIn     *float64
	LThighIn     *float64
	WaistNavelIn *float64

	SleepIssues  *int
	HungerIssues *int
	StressIssues *int

	DietScore    *int
	WorkoutScore *int
}

// Provenance identifies where a candidate came from in the source file.
// DayIndex is 1..7 for candidates derived from a weekly row's day columns
// and 0 for standalone daily rows.
type Provenance struct {
	Line       int
	WeekNumber int
	DayIndex   int
}

// StoreSnapshot lists the keys that already exist in the persisted store.
// Daily keys use the YYYY-MM-DD form of the date.
type StoreSnapshot struct {
	DailyDates  map[string]struct{}
	WeekNumbers map[int]struct{}
}

// Store is the persistence port the pipeline writes through. Upserts carry
// partial-update semantics: nil fields leave the stored value untouched.
type Store interface {
	UpsertDaily(record DailyRecord) error
	UpsertWeekly(record WeeklyRecord) error
	Snapshot() (StoreSnapshot, error)
}

func DateKey(date time.Time) string {
	return date.Format(dateLayout)
}
