package services

import (
	"errors"
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/models"
)

var ErrInvalidRange = errors.New("invalid range")

type CleanupDailyStore interface {
	DeleteByUserAndDateRange(userID uint, from time.Time, to time.Time) (int64, error)
}

type CleanupWeeklyStore interface {
	DeleteByUserAndWeekRange(userID uint, fromWeek int, toWeek int) ([]models.WeeklyCheckin, error)
}

// CleanupService removes imported data again: dailies by date range, weeks
// by week-number range (optionally with the dailies those weeks cover).
type CleanupService struct {
	dailies  CleanupDailyStore
	weeklies CleanupWeeklyStore
}

type CleanupResult struct {
	WeeksDeleted   int   `json:"weeks_deleted"`
	DailiesDeleted int64 `json:"dailies_deleted"`
}

func NewCleanupService(dailies CleanupDailyStore, weeklies CleanupWeeklyStore) *CleanupService {
	return &CleanupService{
		dailies:  dailies,
		weeklies: weeklies,
	}
}

func (service *CleanupService) DeleteDailyRange(userID uint, from time.Time, to time.Time) (int64, error) {
	if to.Before(from) {
		return 0, ErrInvalidRange
	}
	return service.dailies.DeleteByUserAndDateRange(userID, from, to)
}

func (service *CleanupService) DeleteWeekRange(userID uint, fromWeek int, toWeek int, includeDailies bool) (CleanupResult, error) {
	if fromWeek < 1 || toWeek < fromWeek {
		return CleanupResult{}, ErrInvalidRange
	}

	deleted, err := service.weeklies.DeleteByUserAndWeekRange(userID, fromWeek, toWeek)
	if err != nil {
		return CleanupResult{}, err
	}
	result := CleanupResult{WeeksDeleted: len(deleted)}

	if !includeDailies || len(deleted) == 0 {
		return result, nil
	}

	from, to, covered := weekSpan(deleted)
	if !covered {
		return result, nil
	}
	count, err := service.dailies.DeleteByUserAndDateRange(userID, from, to)
	if err != nil {
		return result, err
	}
	result.DailiesDeleted = count
	return result, nil
}

// weekSpan is the calendar span the deleted weeks covered: earliest start
// through latest start plus six days. Weeks without a start date anchor no
// dates and are ignored.
func weekSpan(checkins []models.WeeklyCheckin) (time.Time, time.Time, bool) {
	var first, last time.Time
	found := false
	for _, checkin := range checkins {
		if checkin.StartDate == nil {
			continue
		}
		start := *checkin.StartDate
		if !found || start.Before(first) {
			first = start
		}
		if !found || start.After(last) {
			last = start
		}
		found = true
	}
	if !found {
		return time.Time{}, time.Time{}, false
	}
	return first, last.AddDate(0, 0, 6), true
}
