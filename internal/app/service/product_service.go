package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/pkg/logger"
	"github.com/msolera/catalog-backend/pkg/util"
	"gorm.io/gorm"
)

// requiredLocale is the locale every product write must carry a translation
// for; the admin frontend authors content in Spanish first.
const requiredLocale = "es"

// TranslationInput is one locale entry of a write request.
type TranslationInput struct {
	Name        string
	Description *string
}

// PackItemInput is one constituent of a pack write request.
type PackItemInput struct {
	ProductID uint
	Quantity  int
}

// ProductInput enumerates every field a product write accepts. Create and
// update share the same shape; absent optional fields clear the stored
// value, matching the admin form which always submits the full record.
type ProductInput struct {
	MainImageURL *string
	Status       model.ProductStatus
	Type         model.ProductType
	Price        *float64
	Translations map[string]TranslationInput
	PackItems    []PackItemInput
}

type ProductService interface {
	ListProducts(locale string) ([]ProductView, error)
	ListFilteredProducts(typeFilter *model.ProductType, locale string) ([]ProductView, error)
	GetProductByID(id uint, locale string) (*ProductView, error)
	CreateProduct(input ProductInput, locale string) (*ProductView, error)
	UpdateProduct(id uint, input ProductInput, locale string) (*ProductView, error)
	DeleteProduct(id uint) error
	SetPackItems(packID uint, items []PackItemInput) error
	ExportCatalog(locale string) ([]byte, error)
}

type productService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewProductService(productRepo repository.ProductRepository, db *gorm.DB) ProductService {
	return &productService{
		productRepo: productRepo,
		db:          db,
	}
}

// ListProducts returns every product with display strings resolved for the
// locale; products without any translation show "-" placeholders.
func (s *productService) ListProducts(locale string) ([]ProductView, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, buildProductView(&products[i], locale, true))
	}

	logger.Info("Products listed", map[string]interface{}{
		"count":  len(views),
		"locale": locale,
	})
	return views, nil
}

// ListFilteredProducts returns active products, optionally narrowed by
// type, for the public-facing pickers of the admin frontend.
func (s *productService) ListFilteredProducts(typeFilter *model.ProductType, locale string) ([]ProductView, error) {
	products, err := s.productRepo.FindWithFilter(repository.ProductFilter{
		Type:       typeFilter,
		ActiveOnly: true,
	})
	if err != nil {
		logger.Error("Failed to list filtered products", err)
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, buildProductView(&products[i], locale, false))
	}
	return views, nil
}

func (s *productService) GetProductByID(id uint, locale string) (*ProductView, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	view := buildProductView(product, locale, false)
	return &view, nil
}

func (s *productService) CreateProduct(input ProductInput, locale string) (*ProductView, error) {
	if err := s.validateProductInput(input); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return nil, tx.Error
	}

	product := model.Product{
		MainImageURL: input.MainImageURL,
		Status:       input.Status,
		Type:         input.Type,
		Price:        *input.Price,
	}
	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create product", err, map[string]interface{}{
			"type": input.Type,
		})
		return nil, err
	}

	if err := s.upsertProductTranslations(tx, product.ID, input.Translations); err != nil {
		tx.Rollback()
		logger.Error("Failed to create product translations", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return nil, err
	}

	if product.Type == model.TypePack {
		if err := syncPackItems(tx, product.ID, input.PackItems); err != nil {
			tx.Rollback()
			logger.Error("Failed to attach pack items", err, map[string]interface{}{
				"pack_id": product.ID,
			})
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit product creation", err)
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"type":       product.Type,
	})
	return s.GetProductByID(product.ID, locale)
}

func (s *productService) UpdateProduct(id uint, input ProductInput, locale string) (*ProductView, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.validateProductInput(input); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return nil, tx.Error
	}

	// Updates via map so an absent main_image_url clears the column.
	err = tx.Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"main_image_url": input.MainImageURL,
		"status":         input.Status,
		"type":           input.Type,
		"price":          *input.Price,
	}).Error
	if err != nil {
		tx.Rollback()
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	if err := s.upsertProductTranslations(tx, id, input.Translations); err != nil {
		tx.Rollback()
		logger.Error("Failed to update product translations", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	if input.Type == model.TypePack {
		if err := syncPackItems(tx, id, input.PackItems); err != nil {
			tx.Rollback()
			logger.Error("Failed to sync pack items", err, map[string]interface{}{
				"pack_id": id,
			})
			return nil, err
		}
	} else if product.Type == model.TypePack {
		// Changing a pack into another type orphans its composition rows.
		if err := tx.Where("pack_id = ?", id).Delete(&model.PackItem{}).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to clear pack items", err, map[string]interface{}{
				"pack_id": id,
			})
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit product update", err)
		return nil, err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": id,
	})
	return s.GetProductByID(id, locale)
}

// DeleteProduct removes a product and everything it owns: translations,
// gallery rows, options with their translations, offers, and pack
// memberships on both sides.
func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", tx.Error)
		return tx.Error
	}

	var optionIDs []uint
	if err := tx.Model(&model.Option{}).Where("product_id = ?", id).Pluck("id", &optionIDs).Error; err != nil {
		tx.Rollback()
		return err
	}
	if len(optionIDs) > 0 {
		if err := tx.Where("option_id IN ?", optionIDs).Delete(&model.OptionTranslation{}).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	steps := []struct {
		query interface{}
		args  []interface{}
		dest  interface{}
	}{
		{"product_id = ?", []interface{}{id}, &model.Option{}},
		{"product_id = ?", []interface{}{id}, &model.ProductTranslation{}},
		{"product_id = ?", []interface{}{id}, &model.ProductImage{}},
		{"product_id = ?", []interface{}{id}, &model.Offer{}},
		{"pack_id = ? OR product_id = ?", []interface{}{id, id}, &model.PackItem{}},
	}
	for _, step := range steps {
		if err := tx.Where(step.query, step.args...).Delete(step.dest).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to cascade product delete", err, map[string]interface{}{
				"product_id": id,
			})
			return err
		}
	}

	if err := tx.Delete(&model.Product{}, id).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit product deletion", err)
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

// SetPackItems replaces the whole constituent set of a pack: rows missing
// from items are removed, present ones get the new quantity, new ones are
// inserted. Validation failures surface before any row is touched.
func (s *productService) SetPackItems(packID uint, items []PackItemInput) error {
	pack, err := s.productRepo.FindByID(packID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	fields := fieldErrors{}
	if pack.Type != model.TypePack {
		fields.add("pack_id", "the product is not a pack")
	}
	s.validatePackItems(items, fields)
	if err := fields.asError(); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := syncPackItems(tx, packID, items); err != nil {
		tx.Rollback()
		logger.Error("Failed to sync pack items", err, map[string]interface{}{
			"pack_id": packID,
		})
		return err
	}
	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit pack item sync", err)
		return err
	}

	logger.Info("Pack items replaced", map[string]interface{}{
		"pack_id": packID,
		"count":   len(items),
	})
	return nil
}

// syncPackItems performs the full-replace inside the caller's transaction.
// Duplicate constituents collapse to the last quantity seen.
func syncPackItems(tx *gorm.DB, packID uint, items []PackItemInput) error {
	quantities := make(map[uint]int, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, seen := quantities[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] = item.Quantity
	}

	cleanup := tx.Where("pack_id = ?", packID)
	if len(ids) > 0 {
		cleanup = cleanup.Where("product_id NOT IN ?", ids)
	}
	if err := cleanup.Delete(&model.PackItem{}).Error; err != nil {
		return err
	}

	for _, productID := range ids {
		var existing model.PackItem
		err := tx.Where("pack_id = ? AND product_id = ?", packID, productID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := model.PackItem{PackID: packID, ProductID: productID, Quantity: quantities[productID]}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			err := tx.Model(&model.PackItem{}).
				Where("pack_id = ? AND product_id = ?", packID, productID).
				Update("quantity", quantities[productID]).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// upsertProductTranslations writes one row per supplied locale, updating
// in place where a (product_id, locale) row already exists. Locales are
// processed in sorted order so writes are deterministic.
func (s *productService) upsertProductTranslations(tx *gorm.DB, productID uint, translations map[string]TranslationInput) error {
	locales := make([]string, 0, len(translations))
	for locale := range translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		input := translations[locale]

		var existing model.ProductTranslation
		err := tx.Where("product_id = ? AND locale = ?", productID, locale).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := model.ProductTranslation{
				ProductID:   productID,
				Locale:      locale,
				Name:        input.Name,
				Description: input.Description,
				Slug:        util.Slugify(input.Name),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			existing.Name = input.Name
			existing.Description = input.Description
			existing.Slug = util.Slugify(input.Name)
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// validateProductInput applies the write-time rules shared by create and
// update. Pack constituents are checked against storage so a failure
// surfaces before the transaction opens.
func (s *productService) validateProductInput(input ProductInput) error {
	fields := fieldErrors{}

	if !model.ValidProductStatus(input.Status) {
		fields.add("status", "status must be active or inactive")
	}
	if !model.ValidType(input.Type) {
		fields.add("type", "type must be simple, option_group or pack")
	}
	if input.Price == nil {
		fields.add("price", "price is required")
	} else if *input.Price < 0 {
		fields.add("price", "price cannot be negative")
	}
	if input.MainImageURL != nil {
		validateURLField("main_image_url", *input.MainImageURL, fields)
	}

	if _, ok := input.Translations[requiredLocale]; !ok {
		fields.add("translations.es.name", "a Spanish translation is required")
	}
	for locale, tr := range input.Translations {
		prefix := fmt.Sprintf("translations.%s", locale)
		if len(locale) == 0 || len(locale) > 5 {
			fields.add(prefix+".locale", "locale must be 1 to 5 characters")
		}
		if strings.TrimSpace(tr.Name) == "" {
			fields.add(prefix+".name", "name is required")
		} else if len(tr.Name) > 255 {
			fields.add(prefix+".name", "name cannot exceed 255 characters")
		}
	}

	if input.Type == model.TypePack {
		if len(input.PackItems) == 0 {
			fields.add("pack_products", "a pack needs at least one product")
		} else {
			s.validatePackItems(input.PackItems, fields)
		}
	}

	return fields.asError()
}

// validatePackItems checks quantities plus the existence and type of every
// constituent. Packs cannot contain packs, which also rules out a pack
// containing itself.
func (s *productService) validatePackItems(items []PackItemInput, fields fieldErrors) {
	ids := make([]uint, 0, len(items))
	for i, item := range items {
		if item.Quantity < 1 {
			fields.add(fmt.Sprintf("pack_products.%d.quantity", i), "quantity must be at least 1")
		}
		if item.ProductID == 0 {
			fields.add(fmt.Sprintf("pack_products.%d.product_id", i), "product_id is required")
			continue
		}
		ids = append(ids, item.ProductID)
	}
	if len(ids) == 0 {
		return
	}

	constituents, err := s.productRepo.FindByIDs(ids)
	if err != nil {
		fields.add("pack_products", "could not verify pack products")
		return
	}
	byID := make(map[uint]*model.Product, len(constituents))
	for i := range constituents {
		byID[constituents[i].ID] = &constituents[i]
	}

	for i, item := range items {
		if item.ProductID == 0 {
			continue
		}
		constituent, ok := byID[item.ProductID]
		if !ok {
			fields.add(fmt.Sprintf("pack_products.%d.product_id", i), "the product does not exist")
			continue
		}
		if constituent.Type == model.TypePack {
			fields.add(fmt.Sprintf("pack_products.%d.product_id", i), "a pack cannot contain another pack")
		}
	}
}

func validateURLField(field, value string, fields fieldErrors) {
	if len(value) > 255 {
		fields.add(field, field+" cannot exceed 255 characters")
		return
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		fields.add(field, field+" must be a valid URL")
	}
}
