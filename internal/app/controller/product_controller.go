package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/service"
	apperrors "github.com/msolera/catalog-backend/internal/errors"
	"github.com/msolera/catalog-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

type TranslationRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type PackItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// ProductRequest is the full-record payload the admin form submits for
// both create and update. Optional fields left out are cleared.
type ProductRequest struct {
	MainImageURL *string                       `json:"main_image_url"`
	Status       string                        `json:"status"`
	Type         string                        `json:"type"`
	Price        *float64                      `json:"price"`
	Translations map[string]TranslationRequest `json:"translations"`
	PackProducts []PackItemRequest             `json:"pack_products"`
}

func (r ProductRequest) toInput() service.ProductInput {
	input := service.ProductInput{
		MainImageURL: r.MainImageURL,
		Status:       model.ProductStatus(r.Status),
		Type:         model.ProductType(r.Type),
		Price:        r.Price,
		Translations: make(map[string]service.TranslationInput, len(r.Translations)),
	}
	for locale, t := range r.Translations {
		input.Translations[locale] = service.TranslationInput{
			Name:        t.Name,
			Description: t.Description,
		}
	}
	for _, item := range r.PackProducts {
		input.PackItems = append(input.PackItems, service.PackItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return input
}

type PackItemsRequest struct {
	PackProducts []PackItemRequest `json:"pack_products"`
}

func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	products, err := ctrl.productService.ListProducts(locale)
	if err != nil {
		log.Error("Failed to list products", err, nil)
		respondServiceError(c, err, "list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ListFilteredProducts serves the public-facing pickers: only active
// products, optionally narrowed to one type via ?type=.
func (ctrl *ProductController) ListFilteredProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	var typeFilter *model.ProductType
	if typeStr := c.Query("type"); typeStr != "" {
		t := model.ProductType(typeStr)
		if !model.ValidType(t) {
			apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidType, "Invalid product type")
			return
		}
		typeFilter = &t
	}

	products, err := ctrl.productService.ListFilteredProducts(typeFilter, locale)
	if err != nil {
		log.Error("Failed to list filtered products", err, nil)
		respondServiceError(c, err, "list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProductByID(id, locale)
	if err != nil {
		if err != service.ErrProductNotFound {
			log.Error("Failed to fetch product", err, map[string]interface{}{
				"product_id": id,
			})
		}
		respondServiceError(c, err, "fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	var req ProductRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	product, err := ctrl.productService.CreateProduct(req.toInput(), locale)
	if err != nil {
		respondServiceError(c, err, "create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, req.toInput(), locale)
	if err != nil {
		respondServiceError(c, err, "update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		respondServiceError(c, err, "delete product")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetPackItems replaces the full composition of a pack in one call.
func (ctrl *ProductController) SetPackItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PackItemsRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid pack items request", map[string]interface{}{
			"pack_id": id,
			"error":   err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	items := make([]service.PackItemInput, 0, len(req.PackProducts))
	for _, item := range req.PackProducts {
		items = append(items, service.PackItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := ctrl.productService.SetPackItems(id, items); err != nil {
		respondServiceError(c, err, "update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pack composition updated successfully",
	})
}

// ExportCatalog streams the catalog as an XLSX workbook.
func (ctrl *ProductController) ExportCatalog(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	data, err := ctrl.productService.ExportCatalog(locale)
	if err != nil {
		log.Error("Failed to export catalog", err, nil)
		apperrors.InternalError(c, "Failed to export the catalog")
		return
	}

	filename := fmt.Sprintf("catalog-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
