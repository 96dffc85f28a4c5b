package entity

import (
	"gorm.io/gorm"
)

const (
	InteractionLike    = "like"
	InteractionDislike = "dislike"
)

// Interaction is a single like or dislike cast by one user on one place.
// A user holds at most one per (place, place type); the unique index is the
// invariant the toggle logic relies on.
type Interaction struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex:idx_user_place;not null" json:"userId"`
	PlaceID   uint   `gorm:"uniqueIndex:idx_user_place;not null" json:"placeId"`
	PlaceType string `gorm:"uniqueIndex:idx_user_place;not null" json:"placeType"`
	Kind      string `gorm:"not null" json:"kind"` // like | dislike

	User User `json:"-"`
}
