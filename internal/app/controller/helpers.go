package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/internal/app/service"
	apperrors "github.com/msolera/catalog-backend/internal/errors"
	"github.com/msolera/catalog-backend/internal/middleware"
)

// bindJSONStrict decodes a JSON body rejecting unknown fields, so typos
// in the admin frontend's payloads fail loudly instead of silently
// dropping data.
func bindJSONStrict(c *gin.Context, dest interface{}) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

// parseIDParam parses the :id path segment, writing the 400 itself on
// failure. The second return value reports whether parsing succeeded.
func parseIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		log := middleware.GetLoggerFromContext(c)
		log.Warn("Invalid ID parameter", map[string]interface{}{
			"id":   idStr,
			"path": c.Request.URL.Path,
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidID, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps a service failure onto the HTTP error surface:
// field-level validation errors become 422, the not-found sentinels 404,
// everything else a parsed 500-class response.
func respondServiceError(c *gin.Context, err error, context string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		apperrors.RespondWithValidationError(c, validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
	case errors.Is(err, service.ErrOptionNotFound):
		apperrors.NotFound(c, apperrors.OptionNotFound, "Option not found")
	case errors.Is(err, service.ErrOfferNotFound):
		apperrors.NotFound(c, apperrors.OfferNotFound, "Offer not found")
	default:
		info := apperrors.ParseError(err, context)
		status := http.StatusInternalServerError
		if info.Code == apperrors.ResourceNotFound ||
			info.Code == apperrors.ProductNotFound ||
			info.Code == apperrors.OptionNotFound {
			status = http.StatusNotFound
		} else if info.Code == apperrors.ResourceAlreadyExists {
			status = http.StatusConflict
		}
		apperrors.RespondWithError(c, status, info.Code, info.Message)
	}
}
