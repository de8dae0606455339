package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/database"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"
	"github.com/Ricozl/commerce/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Runs against a real PostgreSQL in Docker. Enable with COMMERCE_PG_TESTS=1.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("COMMERCE_PG_TESTS") != "1" {
		t.Skip("set COMMERCE_PG_TESTS=1 to run PostgreSQL integration tests")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("commerce"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestPostgresConcurrentBids(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := repository.NewRepository(db)
	locks := services.NewKeyedLocks()

	seller := &models.User{Username: "seller", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(ctx, seller))
	require.NoError(t, database.SeedCategories(db, []string{"Misc"}))
	category, err := repo.GetCategoryByName(ctx, "Misc")
	require.NoError(t, err)

	listing := &models.Listing{
		Title: "Globe", Description: "Antique", StartBid: decimal.RequireFromString("1.00"),
		CategoryID: category.ID, IsActive: true, CreatorID: seller.ID,
	}
	require.NoError(t, repo.CreateListing(ctx, listing))

	// each goroutine gets its own lock set so only the row lock serializes them
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		bidder := &models.User{Username: fmt.Sprintf("bidder%d", i), PasswordHash: "x"}
		require.NoError(t, repo.CreateUser(ctx, bidder))

		wg.Add(1)
		go func(i int, bidder *models.User) {
			defer wg.Done()
			bids := services.NewBidService(repo, services.NewKeyedLocks(), nil)
			_, err := bids.PlaceBid(ctx, models.Identity{UserID: bidder.ID, Username: bidder.Username}, listing.ID,
				fmt.Sprintf("%d.00", 2+(i*3)%n))
			if err != nil && !isExpected(err) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i, bidder)
	}
	wg.Wait()

	bids, err := repo.GetListingBids(ctx, listing.ID)
	require.NoError(t, err)
	require.NotEmpty(t, bids)

	reloaded, err := repo.GetListingByID(ctx, listing.ID)
	require.NoError(t, err)
	require.True(t, reloaded.HighestBid.Decimal.Equal(bids[0].Amount))

	closer := services.NewAuctionService(repo, locks, nil)
	result, err := closer.CloseAuction(ctx, models.Identity{UserID: seller.ID, Username: seller.Username}, listing.ID)
	require.NoError(t, err)
	require.Equal(t, bids[0].Bidder.Username, result.Winner)
}

func TestPostgresWatchlistPartialIndex(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := repository.NewRepository(db)

	user := &models.User{Username: "watcher", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(ctx, user))
	require.NoError(t, database.SeedCategories(db, []string{"Misc"}))
	category, err := repo.GetCategoryByName(ctx, "Misc")
	require.NoError(t, err)
	listing := &models.Listing{
		Title: "Map", Description: "Old", StartBid: decimal.RequireFromString("1.00"),
		CategoryID: category.ID, IsActive: true, CreatorID: user.ID,
	}
	require.NoError(t, repo.CreateListing(ctx, listing))

	require.NoError(t, repo.CreateWatchlistEntry(ctx, &models.WatchlistEntry{ListingID: listing.ID, UserID: user.ID}))
	err = repo.CreateWatchlistEntry(ctx, &models.WatchlistEntry{ListingID: listing.ID, UserID: user.ID})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func isExpected(err error) bool {
	return errors.Is(err, auctionerrors.ErrBidTooLow) || errors.Is(err, auctionerrors.ErrTryAgain)
}
