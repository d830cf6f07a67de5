package model

import (
	"gorm.io/gorm"

	"droscher.com/BeerReview/pkg/slug"
)

type Beer struct {
	Model
	Name        string  `gorm:"size:255;not null;uniqueIndex"`
	Slug        string  `gorm:"size:255;not null;uniqueIndex"`
	IBU         int64   `gorm:"column:ibu"`
	Calories    int64
	ABV         float64 `gorm:"column:abv;check:chk_beers_abv,abv >= 0 AND abv <= 100"`
	Brewery     string  `gorm:"size:255"`
	GlassID     uint    `gorm:"not null;index"`
	CreatedByID *uint   `gorm:"index"`

	Glass     Glass    `gorm:"foreignKey:GlassID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedBy *User    `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Ratings   []Rating `gorm:"foreignKey:BeerID"`
}

func (b *Beer) SetName(name string) {
	b.Name = name
	b.Slug = slug.Slugify(name)
}

func (b *Beer) BeforeSave(_ *gorm.DB) error {
	b.Slug = slug.Slugify(b.Name)

	return nil
}

// AverageRating is computed from the preloaded Ratings.
func (b *Beer) AverageRating() float64 {
	return AverageRating(b.Ratings)
}
