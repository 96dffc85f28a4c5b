package repository

import (
	"github.com/yunseok-map/all-food-map/entity"
	"gorm.io/gorm"
)

type SpecialDayRepository struct {
	DB *gorm.DB
}

func NewSpecialDayRepository(db *gorm.DB) *SpecialDayRepository {
	return &SpecialDayRepository{DB: db}
}

func (r *SpecialDayRepository) FindAll() ([]entity.SpecialDay, error) {
	var days []entity.SpecialDay
	err := r.DB.Find(&days).Error
	return days, err
}
