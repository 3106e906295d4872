package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/service"
	apperrors "github.com/msolera/catalog-backend/internal/errors"
	"github.com/msolera/catalog-backend/internal/middleware"
)

type OfferController struct {
	offerService service.OfferService
}

func NewOfferController(offerService service.OfferService) *OfferController {
	return &OfferController{offerService: offerService}
}

type CreateOfferRequest struct {
	ProductID  uint     `json:"product_id"`
	OfferPrice *float64 `json:"offer_price"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Status     string   `json:"status"`
}

// UpdateOfferRequest is a partial patch; an empty body is accepted and
// leaves the offer untouched.
type UpdateOfferRequest struct {
	ProductID  *uint    `json:"product_id"`
	OfferPrice *float64 `json:"offer_price"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
	Status     *string  `json:"status"`
}

func (ctrl *OfferController) ListOffers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	offers, err := ctrl.offerService.ListOffers(locale)
	if err != nil {
		log.Error("Failed to list offers", err, nil)
		respondServiceError(c, err, "list offers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offers": offers,
		"count":  len(offers),
	})
}

func (ctrl *OfferController) GetOfferByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	offer, err := ctrl.offerService.GetOfferByID(id, locale)
	if err != nil {
		if err != service.ErrOfferNotFound {
			log.Error("Failed to fetch offer", err, map[string]interface{}{
				"offer_id": id,
			})
		}
		respondServiceError(c, err, "fetch offer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offer": offer,
	})
}

func (ctrl *OfferController) CreateOffer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	var req CreateOfferRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid offer creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	offer, err := ctrl.offerService.CreateOffer(service.CreateOfferInput{
		ProductID:  req.ProductID,
		OfferPrice: req.OfferPrice,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     model.OfferStatus(req.Status),
	}, locale)
	if err != nil {
		respondServiceError(c, err, "create offer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Offer created successfully",
		"offer":   offer,
	})
}

func (ctrl *OfferController) UpdateOffer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	locale := middleware.GetLocaleFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOfferRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid offer update request", map[string]interface{}{
			"offer_id": id,
			"error":    err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	input := service.UpdateOfferInput{
		ProductID:  req.ProductID,
		OfferPrice: req.OfferPrice,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if req.Status != nil {
		status := model.OfferStatus(*req.Status)
		input.Status = &status
	}

	offer, err := ctrl.offerService.UpdateOffer(id, input, locale)
	if err != nil {
		respondServiceError(c, err, "update offer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer updated successfully",
		"offer":   offer,
	})
}

func (ctrl *OfferController) DeleteOffer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.offerService.DeleteOffer(id); err != nil {
		respondServiceError(c, err, "delete offer")
		return
	}

	c.Status(http.StatusNoContent)
}
