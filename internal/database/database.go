package database

import (
	"errors"
	"fmt"

	"github.com/Ricozl/commerce/internal/config"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// watchlistActivePairIndex keeps at most one active watchlist row per (listing, user)
const watchlistActivePairIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_watchlist_active_pair
	ON watchlist (listing_id, user_id) WHERE is_active`

// Connect opens the configured database
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.SQLitePath + "?_foreign_keys=on&_busy_timeout=5000")
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		// sqlite allows a single writer
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	DB = db
	utils.Info("Database connection established", map[string]any{"driver": cfg.Database.Driver})
	return nil
}

// AutoMigrate runs automatic migrations for all models on the global connection
func AutoMigrate() error {
	return Migrate(DB)
}

// Migrate creates or updates the schema on db
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("database not connected")
	}

	accountModels := []interface{}{
		&models.User{},
		&models.Category{},
	}
	auctionModels := []interface{}{
		&models.Listing{},
		&models.Bid{},
		&models.Comment{},
		&models.WatchlistEntry{},
	}

	for _, group := range [][]interface{}{accountModels, auctionModels} {
		for _, model := range group {
			if err := db.AutoMigrate(model); err != nil {
				return fmt.Errorf("migrate %T: %w", model, err)
			}
		}
	}

	if err := db.Exec(watchlistActivePairIndex).Error; err != nil {
		return fmt.Errorf("create watchlist index: %w", err)
	}

	utils.Info("Database migrations completed", nil)
	return nil
}

// SeedCategories inserts the named categories that do not exist yet
func SeedCategories(db *gorm.DB, names []string) error {
	for _, name := range names {
		category := models.Category{Name: name}
		if err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
