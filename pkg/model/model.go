package model

import "time"

// Model replaces gorm.Model: rows are hard-deleted so unique names and slugs can be reused.
type Model struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"<-:create"`
	UpdatedAt time.Time
}
