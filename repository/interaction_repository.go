package repository

import (
	"errors"

	"github.com/yunseok-map/all-food-map/entity"
	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) FindForPlaces(placeIDs []uint, placeType string) ([]entity.Interaction, error) {
	if len(placeIDs) == 0 {
		return []entity.Interaction{}, nil
	}
	var records []entity.Interaction
	err := r.DB.Where("place_id IN ? AND place_type = ?", placeIDs, placeType).Find(&records).Error
	return records, err
}

// FindOne returns the viewer's record for one place, or nil when none
// exists; absence is a normal negative case, not an error.
func (r *InteractionRepository) FindOne(userID, placeID uint, placeType string) (*entity.Interaction, error) {
	var record entity.Interaction
	err := r.DB.Where("user_id = ? AND place_id = ? AND place_type = ?", userID, placeID, placeType).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *InteractionRepository) Create(record *entity.Interaction) error {
	return r.DB.Create(record).Error
}

func (r *InteractionRepository) UpdateKind(id uint, kind string) error {
	return r.DB.Model(&entity.Interaction{}).Where("id = ?", id).Update("kind", kind).Error
}

// Delete removes the row for real. A soft-deleted record would still sit
// in the unique index and block the user from voting on the place again.
func (r *InteractionRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Interaction{}, id).Error
}
