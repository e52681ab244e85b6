package models

import (
	"time"
)

type UserType string

const (
	UserTypeProfessor UserType = "PROFESSOR"
	UserTypeAluno     UserType = "ALUNO"
)

// IsValid reports whether the value is one of the known user types.
func (t UserType) IsValid() bool {
	return t == UserTypeProfessor || t == UserTypeAluno
}

type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Nome         string   `json:"nome" gorm:"size:30;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string   `json:"-" gorm:"size:100;not null"`
	UserType     UserType `json:"user_type" gorm:"type:varchar(20);not null;default:'ALUNO'"`

	// Profile info
	Serie   *string `json:"serie" gorm:"size:30"`
	Subject *string `json:"subject" gorm:"size:30"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts       []Post `json:"-" gorm:"foreignKey:CreatedByID"`
	EditedPosts []Post `json:"-" gorm:"foreignKey:EditedByID"`
}

func (User) TableName() string {
	return "users"
}
