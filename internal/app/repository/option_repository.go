package repository

import (
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/pkg/logger"
	"gorm.io/gorm"
)

type OptionRepository interface {
	FindAll() ([]model.Option, error)
	FindByID(id uint) (*model.Option, error)
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

// baseQuery preloads the option's own translations plus the parent
// product's, both needed to build an option view.
func (r *optionRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Option{}).
		Preload("Translations").
		Preload("Product.Translations")
}

func (r *optionRepository) FindAll() ([]model.Option, error) {
	var options []model.Option
	if err := r.baseQuery().Find(&options).Error; err != nil {
		logger.Error("Failed to find options in database", err)
		return nil, err
	}

	logger.Debug("Options found in database", map[string]interface{}{
		"count": len(options),
	})
	return options, nil
}

func (r *optionRepository) FindByID(id uint) (*model.Option, error) {
	var option model.Option
	if err := r.baseQuery().First(&option, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find option by ID in database", err, map[string]interface{}{
				"option_id": id,
			})
		}
		return nil, err
	}
	return &option, nil
}
