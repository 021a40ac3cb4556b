package models

import "time"

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string
	HeightCm     *float64
	GoalWeightKg *float64
	Units        string    `gorm:"not null;default:metric"`
	CreatedAt    time.Time `gorm:"not null"`
}
