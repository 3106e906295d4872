package repository

import (
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/pkg/logger"
	"gorm.io/gorm"
)

type OfferRepository interface {
	FindAll() ([]model.Offer, error)
	FindByID(id uint) (*model.Offer, error)
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) FindAll() ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.Model(&model.Offer{}).
		Preload("Product.Translations").
		Order("start_date DESC").
		Find(&offers).Error
	if err != nil {
		logger.Error("Failed to find offers in database", err)
		return nil, err
	}

	logger.Debug("Offers found in database", map[string]interface{}{
		"count": len(offers),
	})
	return offers, nil
}

func (r *offerRepository) FindByID(id uint) (*model.Offer, error) {
	var offer model.Offer
	err := r.db.Model(&model.Offer{}).
		Preload("Product.Translations").
		First(&offer, id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find offer by ID in database", err, map[string]interface{}{
				"offer_id": id,
			})
		}
		return nil, err
	}
	return &offer, nil
}
