package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/repository"
)

type SeedCmd struct {
	ConfigFile string `default:".BeerReview.toml" help:"Path to config file" short:"c"`
}

func (s *SeedCmd) Run(_ *Context) error {
	logger := devLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	repo, err := openRepository(s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err = Seed(context.Background(), repo); err != nil {
		logger.Error("error seeding database", zap.Error(err))

		return err
	}

	logger.Info("database seeded")

	return nil
}

type seedBeer struct {
	author   int
	name     string
	ibu      int64
	calories int64
	abv      float64
	brewery  string
}

var (
	seedUsers = []model.User{
		{Username: "foobar", Email: "foo@bar.com", Password: "testdata1"},
		{Username: "foobaz", Email: "foo@baz.com", Password: "testdata2"},
		{Username: "hihi", Email: "@", Password: ""},
	}

	seedBeers = []seedBeer{
		{author: 0, name: "Sotted Cow", ibu: 20, calories: 100, abv: 12, brewery: "pabst"},
		{author: 1, name: "Newcastle", ibu: 30, calories: 200, abv: 24, brewery: "new glarus"},
		{author: 0, name: "Hebrew The Chosen Beer", ibu: 40, calories: 300, abv: 36, brewery: "miller"},
	}
)

// Seed loads the sample data in one transaction. It writes through the store
// directly, so the per-user rate limits do not apply.
func Seed(ctx context.Context, store repository.Store) error {
	return store.Transaction(ctx, func(store repository.Store) error {
		users := make([]*model.User, 0, len(seedUsers))

		for _, user := range seedUsers {
			created, err := store.AddUser(ctx, user)
			if err != nil {
				return fmt.Errorf("seeding user %s: %w", user.Username, err)
			}

			users = append(users, created)
		}

		var glass model.Glass

		glass.SetName("standard")

		standard, err := store.AddGlass(ctx, glass)
		if err != nil {
			return fmt.Errorf("seeding glass: %w", err)
		}

		beers := make([]*model.Beer, 0, len(seedBeers))

		for _, sample := range seedBeers {
			beer := model.Beer{
				IBU:         sample.ibu,
				Calories:    sample.calories,
				ABV:         sample.abv,
				Brewery:     sample.brewery,
				GlassID:     standard.ID,
				CreatedByID: &users[sample.author].ID,
			}
			beer.SetName(sample.name)

			created, err := store.AddBeer(ctx, beer)
			if err != nil {
				return fmt.Errorf("seeding beer %s: %w", sample.name, err)
			}

			beers = append(beers, created)
		}

		ratings := []model.Rating{
			{Aroma: 5, Appearance: 5, Taste: 5, Palate: 5, Bottle: 4, UserID: users[0].ID, BeerID: beers[0].ID},
			{Aroma: 4, Appearance: 4, Taste: 4, Palate: 4, Bottle: 5, UserID: users[1].ID, BeerID: beers[1].ID},
		}

		for _, rating := range ratings {
			if _, err := store.AddRating(ctx, rating); err != nil {
				return fmt.Errorf("seeding rating: %w", err)
			}
		}

		return nil
	})
}
