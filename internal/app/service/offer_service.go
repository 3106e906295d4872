package service

import (
	"errors"
	"time"

	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/pkg/logger"
	"gorm.io/gorm"
)

// dateLayouts accepted for offer boundaries; the admin form submits plain
// dates, API clients may send full timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// CreateOfferInput enumerates every field an offer creation accepts.
// Dates travel as strings and are parsed here so format failures surface
// as field-level validation errors.
type CreateOfferInput struct {
	ProductID  uint
	OfferPrice *float64
	StartDate  string
	EndDate    string
	Status     model.OfferStatus
}

// UpdateOfferInput carries partial updates: nil fields keep the stored
// value. An input with no fields at all is accepted as a no-op.
type UpdateOfferInput struct {
	ProductID  *uint
	OfferPrice *float64
	StartDate  *string
	EndDate    *string
	Status     *model.OfferStatus
}

// IsEmpty reports whether the patch carries no field at all.
func (i UpdateOfferInput) IsEmpty() bool {
	return i.ProductID == nil && i.OfferPrice == nil &&
		i.StartDate == nil && i.EndDate == nil && i.Status == nil
}

type OfferService interface {
	ListOffers(locale string) ([]OfferView, error)
	GetOfferByID(id uint, locale string) (*OfferView, error)
	CreateOffer(input CreateOfferInput, locale string) (*OfferView, error)
	UpdateOffer(id uint, input UpdateOfferInput, locale string) (*OfferView, error)
	DeleteOffer(id uint) error
}

type offerService struct {
	offerRepo   repository.OfferRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewOfferService(offerRepo repository.OfferRepository, productRepo repository.ProductRepository, db *gorm.DB) OfferService {
	return &offerService{
		offerRepo:   offerRepo,
		productRepo: productRepo,
		db:          db,
	}
}

// ListOffers returns every offer, newest start date first, each carrying
// the owning product's resolved name.
func (s *offerService) ListOffers(locale string) ([]OfferView, error) {
	offers, err := s.offerRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list offers", err)
		return nil, err
	}

	views := make([]OfferView, 0, len(offers))
	for i := range offers {
		views = append(views, buildOfferView(&offers[i], &offers[i].Product, locale))
	}

	logger.Info("Offers listed", map[string]interface{}{
		"count":  len(views),
		"locale": locale,
	})
	return views, nil
}

func (s *offerService) GetOfferByID(id uint, locale string) (*OfferView, error) {
	offer, err := s.offerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Offer not found", map[string]interface{}{
				"offer_id": id,
			})
			return nil, ErrOfferNotFound
		}
		logger.Error("Failed to fetch offer", err, map[string]interface{}{
			"offer_id": id,
		})
		return nil, err
	}

	view := buildOfferView(offer, &offer.Product, locale)
	return &view, nil
}

func (s *offerService) CreateOffer(input CreateOfferInput, locale string) (*OfferView, error) {
	fields := fieldErrors{}

	if input.ProductID == 0 {
		fields.add("product_id", "product_id is required")
	} else {
		s.validateProductExists(input.ProductID, fields)
	}
	if input.OfferPrice == nil {
		fields.add("offer_price", "offer_price is required")
	} else if *input.OfferPrice < 0 {
		fields.add("offer_price", "offer_price cannot be negative")
	}
	if !model.ValidOfferStatus(input.Status) {
		fields.add("status", "status must be active, inactive, scheduled or expired")
	}

	start, err := parseOfferDate(input.StartDate)
	if err != nil {
		fields.add("start_date", "start_date must be a valid date")
	} else if start.Before(startOfToday()) {
		// Enforced at creation only; updates may backdate to correct
		// historical records.
		fields.add("start_date", "start_date cannot be in the past")
	}
	end, err := parseOfferDate(input.EndDate)
	if err != nil {
		fields.add("end_date", "end_date must be a valid date")
	} else if _, hasStartErr := fields["start_date"]; !hasStartErr && end.Before(start) {
		fields.add("end_date", "end_date cannot be before start_date")
	}

	if err := fields.asError(); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return nil, tx.Error
	}

	offer := model.Offer{
		ProductID:  input.ProductID,
		OfferPrice: *input.OfferPrice,
		StartDate:  start,
		EndDate:    end,
		Status:     input.Status,
	}
	if err := tx.Create(&offer).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create offer", err, map[string]interface{}{
			"product_id": input.ProductID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit offer creation", err)
		return nil, err
	}

	logger.Info("Offer created", map[string]interface{}{
		"offer_id":   offer.ID,
		"product_id": offer.ProductID,
	})
	return s.GetOfferByID(offer.ID, locale)
}

func (s *offerService) UpdateOffer(id uint, input UpdateOfferInput, locale string) (*OfferView, error) {
	offer, err := s.offerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	// An empty patch is a no-op success rather than an error.
	if input.IsEmpty() {
		view := buildOfferView(offer, &offer.Product, locale)
		return &view, nil
	}

	fields := fieldErrors{}
	if input.ProductID != nil {
		s.validateProductExists(*input.ProductID, fields)
	}
	if input.OfferPrice != nil && *input.OfferPrice < 0 {
		fields.add("offer_price", "offer_price cannot be negative")
	}
	if input.Status != nil && !model.ValidOfferStatus(*input.Status) {
		fields.add("status", "status must be active, inactive, scheduled or expired")
	}

	start := offer.StartDate
	if input.StartDate != nil {
		parsed, err := parseOfferDate(*input.StartDate)
		if err != nil {
			fields.add("start_date", "start_date must be a valid date")
		} else {
			start = parsed
		}
	}
	end := offer.EndDate
	if input.EndDate != nil {
		parsed, err := parseOfferDate(*input.EndDate)
		if err != nil {
			fields.add("end_date", "end_date must be a valid date")
		} else {
			end = parsed
		}
	}
	if _, bad := fields["end_date"]; !bad && end.Before(start) {
		fields.add("end_date", "end_date cannot be before start_date")
	}

	if err := fields.asError(); err != nil {
		return nil, err
	}

	if input.ProductID != nil {
		offer.ProductID = *input.ProductID
	}
	if input.OfferPrice != nil {
		offer.OfferPrice = *input.OfferPrice
	}
	offer.StartDate = start
	offer.EndDate = end
	if input.Status != nil {
		offer.Status = *input.Status
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return nil, tx.Error
	}

	err = tx.Model(&model.Offer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"product_id":  offer.ProductID,
		"offer_price": offer.OfferPrice,
		"start_date":  offer.StartDate,
		"end_date":    offer.EndDate,
		"status":      offer.Status,
	}).Error
	if err != nil {
		tx.Rollback()
		logger.Error("Failed to update offer", err, map[string]interface{}{
			"offer_id": id,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit offer update", err)
		return nil, err
	}

	logger.Info("Offer updated", map[string]interface{}{
		"offer_id": id,
	})
	return s.GetOfferByID(id, locale)
}

func (s *offerService) DeleteOffer(id uint) error {
	if _, err := s.offerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfferNotFound
		}
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return tx.Error
	}

	if err := tx.Delete(&model.Offer{}, id).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete offer", err, map[string]interface{}{
			"offer_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit offer deletion", err)
		return err
	}

	logger.Info("Offer deleted", map[string]interface{}{
		"offer_id": id,
	})
	return nil
}

func (s *offerService) validateProductExists(productID uint, fields fieldErrors) {
	products, err := s.productRepo.FindByIDs([]uint{productID})
	if err != nil {
		fields.add("product_id", "could not verify the product")
		return
	}
	if len(products) == 0 {
		fields.add("product_id", "the product does not exist")
	}
}

func parseOfferDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
