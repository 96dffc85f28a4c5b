package repository

import (
	"errors"

	"github.com/yunseok-map/all-food-map/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByDeviceID returns nil, nil for an unknown device.
func (r *UserRepository) FindByDeviceID(deviceID string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("device_id = ?", deviceID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}
