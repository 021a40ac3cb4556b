package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Dailies  *DailyMetricRepository
	Weeklies *WeeklyCheckinRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Dailies:  NewDailyMetricRepository(database),
		Weeklies: NewWeeklyCheckinRepository(database),
	}
}
