//go:build integration

package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/postgres"

	"droscher.com/BeerReview/configs"
	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/model"
	"droscher.com/BeerReview/pkg/repository"
)

func newPostgresRepository(t *testing.T) *repository.Repository {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("reviews"),
		tcpostgres.WithUsername("beer"),
		tcpostgres.WithPassword("beer"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	repo, err := repository.OpenDialector(postgres.Open(dsn), configs.DB{MaxIdleConnections: 10, MaxOpenConnections: 10}, zaptest.NewLogger(t))
	require.NoError(t, err)

	t.Cleanup(repo.Close)

	require.NoError(t, repo.Migrate())

	return repo
}

func TestRatings_ConcurrentDuplicateInsertsKeepOneRow(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	user, err := repo.AddUser(ctx, model.User{Username: "foobar", Email: "foo@bar.com", Password: "pw"})
	require.NoError(t, err)

	glass := model.Glass{}
	glass.SetName("standard")
	savedGlass, err := repo.AddGlass(ctx, glass)
	require.NoError(t, err)

	beer := model.Beer{GlassID: savedGlass.ID, ABV: 4.7}
	beer.SetName("Newcastle")
	savedBeer, err := repo.AddBeer(ctx, beer)
	require.NoError(t, err)

	const writers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)

	for range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := repo.AddRating(ctx, model.Rating{Aroma: 5, Appearance: 5, Taste: 5, Palate: 5, Bottle: 4, UserID: user.ID, BeerID: savedBeer.ID})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				created++
			case errs.KindOf(err) == errs.KindConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, conflicts)

	ratings, err := repo.ListRatingsForBeer(ctx, savedBeer.ID, "")
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
}

func TestGlass_DeleteReferencedGlassKeepsRow(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	glass := model.Glass{}
	glass.SetName("Tulip Glass")
	savedGlass, err := repo.AddGlass(ctx, glass)
	require.NoError(t, err)

	beer := model.Beer{GlassID: savedGlass.ID}
	beer.SetName("Sotted Cow")
	_, err = repo.AddBeer(ctx, beer)
	require.NoError(t, err)

	err = repo.DeleteGlass(ctx, savedGlass.ID)
	require.ErrorIs(t, err, errs.ErrConflict)

	found, err := repo.GetGlassBySlug(ctx, "Tulip-Glass")
	require.NoError(t, err)
	assert.Equal(t, savedGlass.ID, found.ID)
}
