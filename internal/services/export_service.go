package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/models"
)

const exportDateLayout = "2006-01-02"

var DailyCSVHeaders = []string{"date", "weight_kg", "steps", "run_km"}

var WeeklyCSVHeaders = []string{
	"week_number", "start_date",
	"r_biceps_in", "l_biceps_in", "chest_in", "r_thigh_in", "l_thigh_in", "waist_navel_in",
	"sleep_issues", "hunger_issues", "stress_issues",
	"diet_score", "workout_score",
}

type ExportDailyReader interface {
	ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.DailyMetric, error)
}

type ExportWeeklyReader interface {
	ListByUser(userID uint) ([]models.WeeklyCheckin, error)
}

type ExportService struct {
	dailies  ExportDailyReader
	weeklies ExportWeeklyReader
}

func NewExportService(dailies ExportDailyReader, weeklies ExportWeeklyReader) *ExportService {
	return &ExportService{
		dailies:  dailies,
		weeklies: weeklies,
	}
}

func (service *ExportService) BuildDailyCSV(userID uint, from *time.Time, to *time.Time) ([]byte, error) {
	metrics, err := service.dailies.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(DailyCSVHeaders); err != nil {
		return nil, err
	}
	for _, metric := range metrics {
		row := []string{
			metric.Date.Format(exportDateLayout),
			csvFloat(metric.WeightKg),
			csvInt64(metric.Steps),
			csvFloat(metric.RunKm),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	return output.Bytes(), writer.Error()
}

func (service *ExportService) BuildWeeklyCSV(userID uint) ([]byte, error) {
	checkins, err := service.weeklies.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(WeeklyCSVHeaders); err != nil {
		return nil, err
	}
	for _, checkin := range checkins {
		row := []string{
			strconv.Itoa(checkin.WeekNumber),
			csvDate(checkin.StartDate),
			csvFloat(checkin.RBicepsIn),
			csvFloat(checkin.LBicepsIn),
			csvFloat(checkin.ChestIn),
			csvFloat(checkin.RThighIn),
			csvFloat(checkin.LThighIn),
			csvFloat(checkin.WaistNavelIn),
			csvInt(checkin.SleepIssues),
			csvInt(checkin.HungerIssues),
			csvInt(checkin.StressIssues),
			csvInt(checkin.DietScore),
			csvInt(checkin.WorkoutScore),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	return output.Bytes(), writer.Error()
}

func csvDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(exportDateLayout)
}

func csvFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func csvInt64(value *int64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatInt(*value, 10)
}

func csvInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
