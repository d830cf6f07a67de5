package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Model
	UUID     uuid.UUID `gorm:"size:36;uniqueIndex"`
	Username string    `gorm:"size:255;not null;uniqueIndex"`
	Email    string    `gorm:"size:255;not null"`
	Password string    `gorm:"size:255;not null"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}

	return nil
}
