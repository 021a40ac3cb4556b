package db

import (
	"github.com/ashujumbo12/FitnessApp/internal/models"
	"gorm.io/gorm"
)

type WeeklyCheckinRepository struct {
	database *gorm.DB
}

func NewWeeklyCheckinRepository(database *gorm.DB) *WeeklyCheckinRepository {
	return &WeeklyCheckinRepository{database: database}
}

func (repo *WeeklyCheckinRepository) ListByUser(userID uint) ([]models.WeeklyCheckin, error) {
	checkins := make([]models.WeeklyCheckin, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("week_number ASC").Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}

func (repo *WeeklyCheckinRepository) FindByUserAndWeek(userID uint, weekNumber int) (models.WeeklyCheckin, bool, error) {
	entry := models.WeeklyCheckin{}
	result := repo.database.
		Where("user_id = ? AND week_number = ?", userID, weekNumber).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeeklyCheckin{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeeklyCheckin{}, false, nil
	}
	return entry, true, nil
}

// ListWeekNumbers returns the week numbers that already have a check-in, for
// snapshot reads ahead of an import.
func (repo *WeeklyCheckinRepository) ListWeekNumbers(userID uint) ([]int, error) {
	checkins := make([]models.WeeklyCheckin, 0)
	if err := repo.database.
		Select("week_number").
		Where("user_id = ?", userID).
		Order("week_number ASC").
		Find(&checkins).Error; err != nil {
		return nil, err
	}

	weeks := make([]int, 0, len(checkins))
	for _, checkin := range checkins {
		weeks = append(weeks, checkin.WeekNumber)
	}
	return weeks, nil
}

// UpsertPartial inserts the row for (user, week_number) or updates only the
// fields that are non-nil on entry. A nil start_date leaves the stored one
// untouched; stored values never regress to NULL.
func (repo *WeeklyCheckinRepository) UpsertPartial(userID uint, entry models.WeeklyCheckin) (bool, error) {
	existing, found, err := repo.FindByUserAndWeek(userID, entry.WeekNumber)
	if err != nil {
		return false, err
	}

	if !found {
		entry.UserID = userID
		if err := repo.database.Create(&entry).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	updates := map[string]any{}
	if entry.StartDate != nil {
		updates["start_date"] = *entry.StartDate
	}
	assignFloat := func(column string, value *float64) {
		if value != nil {
			updates[column] = *value
		}
	}
	assignInt := func(column string, value *int) {
		if value != nil {
			updates[column] = *value
		}
	}
	assignFloat("r_biceps_in", entry.RBicepsIn)
	assignFloat("l_biceps_in", entry.LBicepsIn)
	assignFloat("chest_in", entry.ChestIn)
	assignFloat("r_thigh_in", entry.RThighIn)
	assignFloat("l_thigh_in", entry.LThighIn)
	assignFloat("waist_navel_in", entry.WaistNavelIn)
	assignInt("sleep_issues", entry.SleepIssues)
	assignInt("hunger_issues", entry.HungerIssues)
	assignInt("stress_issues", entry.StressIssues)
	assignInt("diet_score", entry.DietScore)
	assignInt("workout_score", entry.WorkoutScore)

	if len(updates) == 0 {
		return false, nil
	}
	if err := repo.database.Model(&models.WeeklyCheckin{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return false, err
	}
	return false, nil
}

func (repo *WeeklyCheckinRepository) DeleteByUserAndWeekRange(userID uint, fromWeek int, toWeek int) ([]models.WeeklyCheckin, error) {
	checkins := make([]models.WeeklyCheckin, 0)
	if err := repo.database.
		Where("user_id = ? AND week_number >= ? AND week_number <= ?", userID, fromWeek, toWeek).
		Find(&checkins).Error; err != nil {
		return nil, err
	}
	if len(checkins) == 0 {
		return checkins, nil
	}

	if err := repo.database.
		Where("user_id = ? AND week_number >= ? AND week_number <= ?", userID, fromWeek, toWeek).
		Delete(&models.WeeklyCheckin{}).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}
