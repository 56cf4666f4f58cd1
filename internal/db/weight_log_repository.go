package db

import (
	"time"

	"github.com/skoskinen/painovahti/internal/models"
	"gorm.io/gorm"
)

type WeightLogRepository struct {
	database *gorm.DB
}

func NewWeightLogRepository(database *gorm.DB) *WeightLogRepository {
	return &WeightLogRepository{database: database}
}

func (repo *WeightLogRepository) ListByUser(userID uint) ([]models.WeightLog, error) {
	logs := make([]models.WeightLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserRange returns logs with rangeStart <= date < rangeEnd, most
// recent first. Ties within a date resolve to the most recently created row.
func (repo *WeightLogRepository) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.WeightLog, error) {
	logs := make([]models.WeightLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, rangeStart, rangeEnd).
		Order("date DESC, created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindByUserAndDayRange returns the authoritative measurement for one day:
// the most recently created row when duplicates exist.
func (repo *WeightLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WeightLog, bool, error) {
	entry := models.WeightLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightLogRepository) FindLatest(userID uint) (models.WeightLog, bool, error) {
	entry := models.WeightLog{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightLogRepository) FindByID(logID uint) (models.WeightLog, bool, error) {
	entry := models.WeightLog{}
	result := repo.database.Limit(1).Find(&entry, logID)
	if result.Error != nil {
		return models.WeightLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *WeightLogRepository) Create(entry *models.WeightLog) error {
	return repo.database.Create(entry).Error
}

// UpdateWeightAndNotes rewrites the two mutable fields of a measurement.
// Returns false when no row matched the id.
func (repo *WeightLogRepository) UpdateWeightAndNotes(logID uint, weightKg float64, notes string) (bool, error) {
	result := repo.database.Model(&models.WeightLog{}).
		Where("id = ?", logID).
		Updates(map[string]any{"weight_kg": weightKg, "notes": notes})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *WeightLogRepository) Delete(logID uint) (bool, error) {
	result := repo.database.Delete(&models.WeightLog{}, logID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *WeightLogRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WeightLog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
