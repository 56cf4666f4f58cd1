package db

import (
	"time"

	"github.com/skoskinen/painovahti/internal/models"
	"gorm.io/gorm"
)

type DietaryPeriodRepository struct {
	database *gorm.DB
}

func NewDietaryPeriodRepository(database *gorm.DB) *DietaryPeriodRepository {
	return &DietaryPeriodRepository{database: database}
}

func (repo *DietaryPeriodRepository) ListByUser(userID uint) ([]models.DietaryPeriod, error) {
	periods := make([]models.DietaryPeriod, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, created_at DESC, id DESC").
		Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

// ListActive returns is_active periods whose range has not closed before today.
func (repo *DietaryPeriodRepository) ListActive(userID uint, today time.Time) ([]models.DietaryPeriod, error) {
	periods := make([]models.DietaryPeriod, 0)
	if err := repo.database.
		Where("user_id = ? AND is_active = ? AND (end_date IS NULL OR end_date >= ?)", userID, true, today).
		Order("start_date DESC, created_at DESC, id DESC").
		Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

// ListContainingDate returns periods whose [start_date, end_date] range
// contains the given day; open-ended periods match any day past their start.
func (repo *DietaryPeriodRepository) ListContainingDate(userID uint, day time.Time) ([]models.DietaryPeriod, error) {
	periods := make([]models.DietaryPeriod, 0)
	if err := repo.database.
		Where("user_id = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", userID, day, day).
		Order("start_date DESC, created_at DESC, id DESC").
		Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (repo *DietaryPeriodRepository) FindByID(periodID uint) (models.DietaryPeriod, bool, error) {
	period := models.DietaryPeriod{}
	result := repo.database.Limit(1).Find(&period, periodID)
	if result.Error != nil {
		return models.DietaryPeriod{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DietaryPeriod{}, false, nil
	}
	return period, true, nil
}

func (repo *DietaryPeriodRepository) Create(period *models.DietaryPeriod) error {
	return repo.database.Create(period).Error
}

// SetEndDate closes a period without touching any other field.
func (repo *DietaryPeriodRepository) SetEndDate(periodID uint, endDate time.Time) (bool, error) {
	result := repo.database.Model(&models.DietaryPeriod{}).
		Where("id = ?", periodID).
		Update("end_date", endDate)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateFields applies a partial update limited to mutable columns.
func (repo *DietaryPeriodRepository) UpdateFields(periodID uint, updates map[string]any) (bool, error) {
	if len(updates) == 0 {
		return false, nil
	}
	result := repo.database.Model(&models.DietaryPeriod{}).
		Where("id = ?", periodID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *DietaryPeriodRepository) Deactivate(periodID uint) (bool, error) {
	result := repo.database.Model(&models.DietaryPeriod{}).
		Where("id = ?", periodID).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *DietaryPeriodRepository) Delete(periodID uint) (bool, error) {
	result := repo.database.Delete(&models.DietaryPeriod{}, periodID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
