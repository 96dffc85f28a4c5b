package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Nickname   string `json:"nickname"`
	Rating     int    `gorm:"not null" json:"rating"` // 1..5, zero rejected at binding
	ReviewText string `gorm:"not null" json:"reviewText"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`
}
