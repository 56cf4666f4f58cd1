package db

import (
	"github.com/skoskinen/painovahti/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Limit(1).Find(&user, userID)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FirstUser() (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Order("id ASC").Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// EnsureDefaultUser seeds the owner account on first launch and returns it.
func (repo *UserRepository) EnsureDefaultUser() (models.User, error) {
	user, found, err := repo.FirstUser()
	if err != nil {
		return models.User{}, err
	}
	if found {
		return user, nil
	}

	user = models.User{DisplayName: models.DefaultUserName}
	if err := repo.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
