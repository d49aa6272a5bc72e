package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskhive_backend/internal/config"
	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN. The
// handle is cached so migrations and the app share one pool.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Helper{},
		&models.Category{},
		&models.Task{},
		&models.Review{},
		&models.RefreshToken{},
	)
}

// defaultCategories is the fixed catalogue tasks are filed under.
var defaultCategories = []string{
	"Home Improvement",
	"Yard & Garden Care",
	"Tech Support",
	"Event Help",
	"Pet Care",
	"Errands & Delivery",
	"Handyman services",
	"Others",
}

// SeedCategories inserts the default category catalogue once. Reruns are
// no-ops.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range defaultCategories {
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	logger.Info("Seeded task categories", "count", len(defaultCategories))
	return nil
}
