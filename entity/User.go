package entity

import (
	"gorm.io/gorm"
)

// User is an anonymous identity bound to one device. There is no email or
// password; the device proves itself with a generated secret.
type User struct {
	gorm.Model
	DeviceID   string `gorm:"uniqueIndex;not null" json:"deviceId"`
	SecretHash string `json:"-"`
	Role       string `gorm:"not null;default:anon" json:"role"`

	Interactions []Interaction `json:"-"`
	Reviews      []Review      `json:"-"`
	Comments     []Comment     `json:"-"`
}
