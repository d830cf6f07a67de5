package model

import "time"

type Favorite struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	BeerID    uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Beer Beer `gorm:"foreignKey:BeerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
