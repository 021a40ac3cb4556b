package models

import "time"

// WeeklyCheckin is the once-a-week record: tape measurements in inches,
// wellbeing flags on a 0-5 scale and adherence scores on a 0-10 scale.
// StartDate is nullable: imported rows are not required to carry one.
type WeeklyCheckin struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:uidx_weekly_user_week" json:"-"`
	WeekNumber int        `gorm:"not null;uniqueIndex:uidx_weekly_user_week" json:"week_number"`
	StartDate  *time.Time `gorm:"type:date" json:"start_date"`

	RBicepsIn    *float64 `json:"r_biceps_in"`
	LBicepsIn    *float64 `json:"l_biceps_in"`
	ChestIn      *float64 `json:"chest_in"`
	RThighIn     *float64 `json:"r_thigh_in"`
	LThighIn     *float64 `json:"l_thigh_in"`
	WaistNavelIn *float64 `json:"waist_navel_in"`

	SleepIssues  *int `json:"sleep_issues"`
	HungerIssues *int `json:"hunger_issues"`
	StressIssues *int `json:"stress_issues"`

	DietScore    *int `json:"diet_score"`
	WorkoutScore *int `json:"workout_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
