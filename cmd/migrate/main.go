package main

import (
	"github.com/Ricozl/commerce/internal/config"
	"github.com/Ricozl/commerce/internal/database"
	"github.com/Ricozl/commerce/internal/utils"
)

// Creates or updates the schema and seeds SEED_CATEGORIES.
func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load config", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.Log.Level, cfg.Log.JSON)

	if err := database.Connect(cfg); err != nil {
		utils.Fatal("Failed to connect to database", map[string]any{"error": err.Error()})
	}

	if err := database.AutoMigrate(); err != nil {
		utils.Fatal("Failed to run migrations", map[string]any{"error": err.Error()})
	}

	if err := database.SeedCategories(database.GetDB(), cfg.App.SeedCategories); err != nil {
		utils.Fatal("Failed to seed categories", map[string]any{"error": err.Error()})
	}

	utils.Info("Schema is up to date", map[string]any{"categories": len(cfg.App.SeedCategories)})
}
