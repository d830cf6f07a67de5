package sorting

var (
	Users = NewWhitelist("username", Column("users", "id"),
		Field{Token: "username", Column: Column("users", "username")},
		Field{Token: "email", Column: Column("users", "email")},
	)

	Glasses = NewWhitelist("name", Column("glasses", "id"),
		Field{Token: "name", Column: Column("glasses", "name")},
		Field{Token: "slug", Column: Column("glasses", "slug")},
	)

	Beers = NewWhitelist("name", Column("beers", "id"),
		Field{Token: "name", Column: Column("beers", "name")},
		Field{Token: "calories", Column: Column("beers", "calories")},
		Field{Token: "abv", Column: Column("beers", "abv")},
		Field{Token: "brewery", Column: Column("beers", "brewery")},
		Field{Token: "ibu", Column: Column("beers", "ibu")},
	)

	Ratings = NewWhitelist("average", Column("ratings", "id"),
		Field{Token: "average", Column: Expression("(ratings.aroma + ratings.appearance + ratings.taste + ratings.palate + ratings.bottle)")},
		Field{Token: "aroma", Column: Column("ratings", "aroma")},
		Field{Token: "appearance", Column: Column("ratings", "appearance")},
		Field{Token: "taste", Column: Column("ratings", "taste")},
		Field{Token: "palate", Column: Column("ratings", "palate")},
		Field{Token: "bottle", Column: Column("ratings", "bottle")},
	)
)
