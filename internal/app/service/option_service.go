package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/pkg/logger"
	"gorm.io/gorm"
)

// OptionTranslationInput is one locale entry of an option write request.
type OptionTranslationInput struct {
	Locale      string
	Name        string
	Description *string
}

// CreateOptionInput enumerates every field an option creation accepts.
type CreateOptionInput struct {
	ProductID    uint
	ImageURL     *string
	Status       model.OptionStatus
	Price        *float64
	Translations []OptionTranslationInput
}

// UpdateOptionInput carries partial updates: nil fields keep the stored
// value. Translations, when present, are upserted by locale so an update
// can introduce a locale that did not exist before.
type UpdateOptionInput struct {
	ProductID    *uint
	ImageURL     *string
	Status       *model.OptionStatus
	Price        *float64
	Translations []OptionTranslationInput
}

type OptionService interface {
	ListOptions(locale string) ([]OptionView, error)
	GetOptionByID(id uint, locale string) (*OptionView, error)
	CreateOption(input CreateOptionInput, locale string) (*OptionView, error)
	UpdateOption(id uint, input UpdateOptionInput, locale string) (*OptionView, error)
	DeleteOption(id uint) error
}

type optionService struct {
	optionRepo  repository.OptionRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewOptionService(optionRepo repository.OptionRepository, productRepo repository.ProductRepository, db *gorm.DB) OptionService {
	return &optionService{
		optionRepo:  optionRepo,
		productRepo: productRepo,
		db:          db,
	}
}

func (s *optionService) ListOptions(locale string) ([]OptionView, error) {
	options, err := s.optionRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list options", err)
		return nil, err
	}

	views := make([]OptionView, 0, len(options))
	for i := range options {
		views = append(views, buildOptionView(&options[i], nil, locale))
	}

	logger.Info("Options listed", map[string]interface{}{
		"count":  len(views),
		"locale": locale,
	})
	return views, nil
}

func (s *optionService) GetOptionByID(id uint, locale string) (*OptionView, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Option not found", map[string]interface{}{
				"option_id": id,
			})
			return nil, ErrOptionNotFound
		}
		logger.Error("Failed to fetch option", err, map[string]interface{}{
			"option_id": id,
		})
		return nil, err
	}

	view := buildOptionView(option, nil, locale)
	return &view, nil
}

func (s *optionService) CreateOption(input CreateOptionInput, locale string) (*OptionView, error) {
	fields := fieldErrors{}
	if input.ProductID == 0 {
		fields.add("product_id", "product_id is required")
	} else {
		s.validateParentProduct(input.ProductID, fields)
	}
	if !model.ValidOptionStatus(input.Status) {
		fields.add("status", "status must be active or inactive")
	}
	if input.Price == nil {
		fields.add("price", "price is required")
	} else if *input.Price < 0 {
		fields.add("price", "price cannot be negative")
	}
	if input.ImageURL != nil {
		validateURLField("image_url", *input.ImageURL, fields)
	}
	if len(input.Translations) == 0 {
		fields.add("translations", "at least one translation is required")
	}
	validateOptionTranslations(input.Translations, fields)
	if err := fields.asError(); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return nil, tx.Error
	}

	option := model.Option{
		ProductID: input.ProductID,
		ImageURL:  input.ImageURL,
		Status:    input.Status,
		Price:     *input.Price,
	}
	if err := tx.Create(&option).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create option", err, map[string]interface{}{
			"product_id": input.ProductID,
		})
		return nil, err
	}

	if err := upsertOptionTranslations(tx, option.ID, input.Translations); err != nil {
		tx.Rollback()
		logger.Error("Failed to create option translations", err, map[string]interface{}{
			"option_id": option.ID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit option creation", err)
		return nil, err
	}

	logger.Info("Option created", map[string]interface{}{
		"option_id":  option.ID,
		"product_id": option.ProductID,
	})
	return s.GetOptionByID(option.ID, locale)
}

func (s *optionService) UpdateOption(id uint, input UpdateOptionInput, locale string) (*OptionView, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	fields := fieldErrors{}
	if input.ProductID != nil {
		s.validateParentProduct(*input.ProductID, fields)
	}
	if input.Status != nil && !model.ValidOptionStatus(*input.Status) {
		fields.add("status", "status must be active or inactive")
	}
	if input.Price != nil && *input.Price < 0 {
		fields.add("price", "price cannot be negative")
	}
	if input.ImageURL != nil {
		validateURLField("image_url", *input.ImageURL, fields)
	}
	validateOptionTranslations(input.Translations, fields)
	if err := fields.asError(); err != nil {
		return nil, err
	}

	if input.ProductID != nil {
		option.ProductID = *input.ProductID
	}
	if input.ImageURL != nil {
		option.ImageURL = input.ImageURL
	}
	if input.Status != nil {
		option.Status = *input.Status
	}
	if input.Price != nil {
		option.Price = *input.Price
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return nil, tx.Error
	}

	err = tx.Model(&model.Option{}).Where("id = ?", id).Updates(map[string]interface{}{
		"product_id": option.ProductID,
		"image_url":  option.ImageURL,
		"status":     option.Status,
		"price":      option.Price,
	}).Error
	if err != nil {
		tx.Rollback()
		logger.Error("Failed to update option", err, map[string]interface{}{
			"option_id": id,
		})
		return nil, err
	}

	if err := upsertOptionTranslations(tx, id, input.Translations); err != nil {
		tx.Rollback()
		logger.Error("Failed to update option translations", err, map[string]interface{}{
			"option_id": id,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit option update", err)
		return nil, err
	}

	logger.Info("Option updated", map[string]interface{}{
		"option_id": id,
	})
	return s.GetOptionByID(id, locale)
}

func (s *optionService) DeleteOption(id uint) error {
	if _, err := s.optionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOptionNotFound
		}
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return tx.Error
	}

	if err := tx.Where("option_id = ?", id).Delete(&model.OptionTranslation{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete option translations", err, map[string]interface{}{
			"option_id": id,
		})
		return err
	}
	if err := tx.Delete(&model.Option{}, id).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete option", err, map[string]interface{}{
			"option_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit option deletion", err)
		return err
	}

	logger.Info("Option deleted", map[string]interface{}{
		"option_id": id,
	})
	return nil
}

// validateParentProduct rejects options attached to missing products or to
// packs; packs compose products, they never carry options.
func (s *optionService) validateParentProduct(productID uint, fields fieldErrors) {
	products, err := s.productRepo.FindByIDs([]uint{productID})
	if err != nil {
		fields.add("product_id", "could not verify the product")
		return
	}
	if len(products) == 0 {
		fields.add("product_id", "the product does not exist")
		return
	}
	if products[0].Type == model.TypePack {
		fields.add("product_id", "options cannot be attached to a pack")
	}
}

func validateOptionTranslations(translations []OptionTranslationInput, fields fieldErrors) {
	for i, tr := range translations {
		prefix := fmt.Sprintf("translations.%d", i)
		if len(tr.Locale) == 0 || len(tr.Locale) > 5 {
			fields.add(prefix+".locale", "locale must be 1 to 5 characters")
		}
		if strings.TrimSpace(tr.Name) == "" {
			fields.add(prefix+".name", "name is required")
		} else if len(tr.Name) > 255 {
			fields.add(prefix+".name", "name cannot exceed 255 characters")
		}
	}
}

// upsertOptionTranslations writes one row per supplied entry, updating in
// place where an (option_id, locale) row already exists.
func upsertOptionTranslations(tx *gorm.DB, optionID uint, translations []OptionTranslationInput) error {
	for _, input := range translations {
		var existing model.OptionTranslation
		err := tx.Where("option_id = ? AND locale = ?", optionID, input.Locale).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := model.OptionTranslation{
				OptionID:    optionID,
				Locale:      input.Locale,
				Name:        input.Name,
				Description: input.Description,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			existing.Name = input.Name
			existing.Description = input.Description
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
