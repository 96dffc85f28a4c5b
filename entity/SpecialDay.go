package entity

import (
	"gorm.io/gorm"
)

type SpecialDay struct {
	gorm.Model
	DateMD      string `gorm:"not null" json:"dateMd"` // "MM.DD"
	Title       string `json:"title"`
	Description string `json:"description"`
}
