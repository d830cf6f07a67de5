package model

const ratingAxes = 5

type Rating struct {
	Model
	Aroma      int64 `gorm:"not null;check:chk_ratings_aroma,aroma >= 1 AND aroma <= 5"`
	Appearance int64 `gorm:"not null;check:chk_ratings_appearance,appearance >= 1 AND appearance <= 5"`
	Taste      int64 `gorm:"not null;check:chk_ratings_taste,taste >= 1 AND taste <= 5"`
	Palate     int64 `gorm:"not null;check:chk_ratings_palate,palate >= 1 AND palate <= 5"`
	Bottle     int64 `gorm:"not null;check:chk_ratings_bottle,bottle >= 1 AND bottle <= 5"`
	UserID     uint  `gorm:"<-:create;not null;uniqueIndex:idx_ratings_user_beer"`
	BeerID     uint  `gorm:"<-:create;not null;uniqueIndex:idx_ratings_user_beer;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Beer Beer `gorm:"foreignKey:BeerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (r *Rating) Average() float64 {
	return float64(r.Aroma+r.Appearance+r.Taste+r.Palate+r.Bottle) / ratingAxes
}

// AverageRating is the mean of the ratings' averages, or 0 when there are none.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64

	for index := range ratings {
		sum += ratings[index].Average()
	}

	return sum / float64(len(ratings))
}
