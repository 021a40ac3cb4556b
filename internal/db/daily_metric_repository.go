package db

import (
	"time"

	"github.com/ashujumbo12/FitnessApp/internal/models"
	"gorm.io/gorm"
)

type DailyMetricRepository struct {
	database *gorm.DB
}

func NewDailyMetricRepository(database *gorm.DB) *DailyMetricRepository {
	return &DailyMetricRepository{database: database}
}

func (repo *DailyMetricRepository) ListByUser(userID uint) ([]models.DailyMetric, error) {
	metrics := make([]models.DailyMetric, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (repo *DailyMetricRepository) ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.DailyMetric, error) {
	query := repo.database.Model(&models.DailyMetric{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	metrics := make([]models.DailyMetric, 0)
	if err := query.Order("date ASC, id ASC").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (repo *DailyMetricRepository) FindByUserAndDate(userID uint, date time.Time) (models.DailyMetric, bool, error) {
	entry := models.DailyMetric{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyMetric{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMetric{}, false, nil
	}
	return entry, true, nil
}

// ListDates returns every date that already has a daily row, for snapshot
// reads ahead of an import.
func (repo *DailyMetricRepository) ListDates(userID uint) ([]time.Time, error) {
	metrics := make([]models.DailyMetric, 0)
	if err := repo.database.
		Select("date").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(metrics))
	for _, metric := range metrics {
		dates = append(dates, metric.Date)
	}
	return dates, nil
}

// UpsertPartial inserts the row for (user, date) or updates only the fields
// that are non-nil on entry. Stored values never regress to NULL because the
// incoming row omitted them.
func (repo *DailyMetricRepository) UpsertPartial(userID uint, entry models.DailyMetric) (bool, error) {
	existing, found, err := repo.FindByUserAndDate(userID, entry.Date)
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
	if entry.WeightKg != nil {
		updates["weight_kg"] = *entry.WeightKg
	}
	if entry.Steps != nil {
		updates["steps"] = *entry.Steps
	}
	if entry.RunKm != nil {
		updates["run_km"] = *entry.RunKm
	}
	if len(updates) == 0 {
		return false, nil
	}

	if err := repo.database.Model(&models.DailyMetric{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return false, err
	}
	return false, nil
}

func (repo *DailyMetricRepository) DeleteByUserAndDateRange(userID uint, from time.Time, to time.Time) (int64, error) {
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Delete(&models.DailyMetric{})
	return result.RowsAffected, result.Error
}

func (repo *DailyMetricRepository) DeleteByUserAndDates(userID uint, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	result := repo.database.
		Where("user_id = ? AND date IN ?", userID, dates).
		Delete(&models.DailyMetric{})
	return result.RowsAffected, result.Error
}
