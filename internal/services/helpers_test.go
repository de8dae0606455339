package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Ricozl/commerce/internal/database"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// every in-memory connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func createUser(t testing.TB, db *gorm.DB, username string) models.Identity {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return models.Identity{UserID: user.ID, Username: user.Username}
}

func createCategory(t testing.TB, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category %s: %v", name, err)
	}
	return &category
}

func createListing(t testing.TB, db *gorm.DB, creator models.Identity, title, startBid string) *models.Listing {
	t.Helper()
	var category models.Category
	if err := db.Where(models.Category{Name: "General"}).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	listing := models.Listing{
		Title:       title,
		Description: "description of " + title,
		StartBid:    decimal.RequireFromString(startBid),
		CategoryID:  category.ID,
		IsActive:    true,
		CreatorID:   creator.UserID,
	}
	if err := db.Create(&listing).Error; err != nil {
		t.Fatalf("failed to create listing: %v", err)
	}
	return &listing
}

func reloadListing(t testing.TB, db *gorm.DB, listingID uint) *models.Listing {
	t.Helper()
	var listing models.Listing
	if err := db.First(&listing, listingID).Error; err != nil {
		t.Fatalf("failed to reload listing: %v", err)
	}
	return &listing
}

func countRows(t testing.TB, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

// recordingPublisher keeps published events for assertions
type recordingPublisher struct {
	mu     sync.Mutex
	events []ListingEvent
}

func (p *recordingPublisher) Publish(event ListingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []ListingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ListingEvent(nil), p.events...)
}

type testServices struct {
	db        *gorm.DB
	repo      *repository.Repository
	events    *recordingPublisher
	bids      *BidService
	auctions  *AuctionService
	watchlist *WatchlistService
	listings  *ListingService
	comments  *CommentService
	auth      *AuthService
	users     *UserService
}

func newTestServices(t testing.TB) *testServices {
	t.Helper()
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	locks := NewKeyedLocks()
	events := &recordingPublisher{}

	authService := NewAuthService(repo)
	authService.cost = bcrypt.MinCost

	return &testServices{
		db:        db,
		repo:      repo,
		events:    events,
		bids:      NewBidService(repo, locks, events),
		auctions:  NewAuctionService(repo, locks, events),
		watchlist: NewWatchlistService(repo, locks),
		listings:  NewListingService(repo),
		comments:  NewCommentService(repo),
		auth:      authService,
		users:     NewUserService(repo),
	}
}

var ctx = context.Background()
