package entity

import (
	"gorm.io/gorm"
)

const (
	BoardGeneral    = "general_comments"
	BoardRestaurant = "restaurant_comments"
)

// Comment lives on one of the two community boards. A nil ParentID marks a
// root comment; replies reference a root and depth is capped at one level.
type Comment struct {
	gorm.Model
	BoardType string `gorm:"index;not null" json:"boardType"`
	ParentID  *uint  `gorm:"index" json:"parentId"`
	Nickname  string `json:"nickname"`
	Text      string `gorm:"not null" json:"text"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Replies []Comment `gorm:"foreignKey:ParentID" json:"-"`
}

// ValidBoard reports whether board names a known board type.
func ValidBoard(board string) bool {
	return board == BoardGeneral || board == BoardRestaurant
}
