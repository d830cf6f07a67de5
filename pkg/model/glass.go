package model

import (
	"gorm.io/gorm"

	"droscher.com/BeerReview/pkg/slug"
)

type Glass struct {
	Model
	Name string `gorm:"size:255;not null;uniqueIndex"`
	Slug string `gorm:"size:255;not null;uniqueIndex"`
}

func (g *Glass) SetName(name string) {
	g.Name = name
	g.Slug = slug.Slugify(name)
}

func (g *Glass) BeforeSave(_ *gorm.DB) error {
	g.Slug = slug.Slugify(g.Name)

	return nil
}
