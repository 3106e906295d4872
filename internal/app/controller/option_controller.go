package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/service"
	apperrors "github.com/msolera/catalog-backend/internal/errors"
	"github.com/msolera/catalog-backend/internal/middleware"
)

type OptionController struct {
	optionService service.OptionService
}

func NewOptionController(optionService service.OptionService) *OptionController {
	return &OptionController{optionService: optionService}
}

type OptionTranslationRequest struct {
	Locale      string  `json:"locale"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CreateOptionRequest struct {
	ProductID    uint                       `json:"product_id"`
	ImageURL     *string                    `json:"image_url"`
	Status       string                     `json:"status"`
	Price        *float64                   `json:"price"`
	Translations []OptionTranslationRequest `json:"translations"`
}

// UpdateOptionRequest is a partial patch: absent fields keep the stored
// value, and translations are upserted by locale.
type UpdateOptionRequest struct {
	ProductID    *uint                      `json:"product_id"`
	ImageURL     *string                    `json:"image_url"`
	Status       *string                    `json:"status"`
	Price        *float64                   `json:"price"`
	Translations []OptionTranslationRequest `json:"translations"`
}

func toOptionTranslationInputs(reqs []OptionTranslationRequest) []service.OptionTranslationInput {
	translations := make([]service.OptionTranslationInput, 0, len(reqs))
	for _, t := range reqs {
		translations = append(translations, service.OptionTranslationInput{
			Locale:      t.Locale,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return translations
}

func (ctrl *OptionController) ListOptions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	options, err := ctrl.optionService.ListOptions(locale)
	if err != nil {
		log.Error("Failed to list options", err, nil)
		respondServiceError(c, err, "list options")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"options": options,
		"count":   len(options),
	})
}

func (ctrl *OptionController) GetOptionByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	option, err := ctrl.optionService.GetOptionByID(id, locale)
	if err != nil {
		if err != service.ErrOptionNotFound {
			log.Error("Failed to fetch option", err, map[string]interface{}{
				"option_id": id,
			})
		}
		respondServiceError(c, err, "fetch option")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"option": option,
	})
}

func (ctrl *OptionController) CreateOption(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	var req CreateOptionRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid option creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	option, err := ctrl.optionService.CreateOption(service.CreateOptionInput{
		ProductID:    req.ProductID,
		ImageURL:     req.ImageURL,
		Status:       model.OptionStatus(req.Status),
		Price:        req.Price,
		Translations: toOptionTranslationInputs(req.Translations),
	}, locale)
	if err != nil {
		respondServiceError(c, err, "create option")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Option created successfully",
		"option":  option,
	})
}

func (ctrl *OptionController) UpdateOption(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOptionRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid option update request", map[string]interface{}{
			"option_id": id,
			"error":     err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	input := service.UpdateOptionInput{
		ProductID:    req.ProductID,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		Translations: toOptionTranslationInputs(req.Translations),
	}
	if req.Status != nil {
		status := model.OptionStatus(*req.Status)
		input.Status = &status
	}

	option, err := ctrl.optionService.UpdateOption(id, input, locale)
	if err != nil {
		respondServiceError(c, err, "update option")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Option updated successfully",
		"option":  option,
	})
}

func (ctrl *OptionController) DeleteOption(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.optionService.DeleteOption(id); err != nil {
		respondServiceError(c, err, "delete option")
		return
	}

	c.Status(http.StatusNoContent)
}
