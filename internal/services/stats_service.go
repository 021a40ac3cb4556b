package services

import (
	"sort"
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/models"
)

type StatsDailyReader interface {
	ListByUser(userID uint) ([]models.DailyMetric, error)
}

type StatsWeeklyReader interface {
	ListByUser(userID uint) ([]models.WeeklyCheckin, error)
}

type StatsService struct {
	dailies  StatsDailyReader
	weeklies StatsWeeklyReader
}

// WeeklySummary aggregates the dailies falling inside one check-in week
// and carries the week's adherence scores alongside.
type WeeklySummary struct {
	WeekNumber   int        `json:"week_number"`
	StartDate    *time.Time `json:"start_date"`
	DayCount     int        `json:"day_count"`
	AvgWeightKg  *float64   `json:"avg_weight_kg,omitempty"`
	AvgSteps     *float64   `json:"avg_steps,omitempty"`
	WeightLossKg *float64   `json:"weight_loss_kg,omitempty"`
	DietScore    *int       `json:"diet_score,omitempty"`
	WorkoutScore *int       `json:"workout_score,omitempty"`
}

func NewStatsService(dailies StatsDailyReader, weeklies StatsWeeklyReader) *StatsService {
	return &StatsService{
		dailies:  dailies,
		weeklies: weeklies,
	}
}

func (service *StatsService) BuildWeeklySummaries(userID uint) ([]WeeklySummary, error) {
	dailies, err := service.dailies.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	weeklies, err := service.weeklies.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return BuildWeeklySummaries(dailies, weeklies), nil
}

// BuildWeeklySummaries computes avg weight, avg steps and week-over-week
// weight loss. A daily belongs to the week whose start date covers it
// (start .. start+6); a week without a start date claims no dailies and
// carries only its own scores. Weeks come back ordered by week number.
func BuildWeeklySummaries(dailies []models.DailyMetric, weeklies []models.WeeklyCheckin) []WeeklySummary {
	ordered := make([]models.WeeklyCheckin, len(weeklies))
	copy(ordered, weeklies)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].WeekNumber < ordered[j].WeekNumber
	})

	summaries := make([]WeeklySummary, 0, len(ordered))
	var previousAvgWeight *float64

	for _, week := range ordered {
		summary := WeeklySummary{
			WeekNumber:   week.WeekNumber,
			StartDate:    week.StartDate,
			DietScore:    week.DietScore,
			WorkoutScore: week.WorkoutScore,
		}

		if week.StartDate == nil {
			summaries = append(summaries, summary)
			continue
		}

		weekEnd := week.StartDate.AddDate(0, 0, 6)
		weightSum, weightCount := 0.0, 0
		stepsSum, stepsCount := 0.0, 0
		for _, daily := range dailies {
			if daily.Date.Before(*week.StartDate) || daily.Date.After(weekEnd) {
				continue
			}
			summary.DayCount++
			if daily.WeightKg != nil {
				weightSum += *daily.WeightKg
				weightCount++
			}
			if daily.Steps != nil {
				stepsSum += float64(*daily.Steps)
				stepsCount++
			}
		}

		if weightCount > 0 {
			avg := weightSum / float64(weightCount)
			summary.AvgWeightKg = &avg
			if previousAvgWeight != nil {
				loss := *previousAvgWeight - avg
				summary.WeightLossKg = &loss
			}
			previousAvgWeight = &avg
		}
		if stepsCount > 0 {
			avg := stepsSum / float64(stepsCount)
			summary.AvgSteps = &avg
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
