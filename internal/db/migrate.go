package db

import (
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Product{},
		&model.ProductTranslation{},
		&model.ProductImage{},
		&model.PackItem{},
		&model.Option{},
		&model.OptionTranslation{},
		&model.Offer{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
