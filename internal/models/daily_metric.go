package models

import "time"

// DailyMetric holds one calendar day of tracking data. A day may carry any
// subset of the measured values; absent values stay NULL so later partial
// imports never erase earlier data.
type DailyMetric struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_daily_user_date" json:"-"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_daily_user_date" json:"date"`
	WeightKg  *float64  `json:"weight_kg"`
	Steps     *int64    `json:"steps"`
	RunKm     *float64  `json:"run_km"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
