package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	WeightLogs *WeightLogRepository
	Periods    *DietaryPeriodRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		WeightLogs: NewWeightLogRepository(database),
		Periods:    NewDietaryPeriodRepository(database),
	}
}
