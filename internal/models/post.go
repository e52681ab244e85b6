package models

import (
	"time"
)

type Post struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"size:100;not null"`
	Content string `json:"content" gorm:"type:text;not null"`

	CreatedByID uint  `json:"created_by_id" gorm:"not null"`
	EditedByID  *uint `json:"edited_by_id"`

	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at"`

	CreatedBy *User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	EditedBy  *User `json:"-" gorm:"foreignKey:EditedByID;constraint:OnDelete:SET NULL"`
}

func (Post) TableName() string {
	return "posts"
}
