package repository

import (
	"github.com/yunseok-map/all-food-map/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("created_at DESC").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByTab(tab string) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Where("source_tab = ?", tab).Order("created_at DESC").Find(&rests).Error
	return rests, err
}

// FindDrawPool returns the candidates for the daily menu draw; pubs are
// not lunch options.
func (r *RestaurantRepository) FindDrawPool() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Where("source_tab <> ?", entity.TabPub).Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}
