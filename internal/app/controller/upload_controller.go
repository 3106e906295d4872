package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/msolera/catalog-backend/internal/errors"
	"github.com/msolera/catalog-backend/internal/middleware"
	"github.com/msolera/catalog-backend/internal/storage"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: s3Storage}
}

type PresignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Presign hands the admin frontend a presigned PUT URL so product images
// go straight to the bucket.
func (ctrl *UploadController) Presign(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid presign request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}
	if req.Filename == "" || req.ContentType == "" {
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationRequired, "filename and content_type are required")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType); err != nil {
		log.Warn("Rejected upload content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.Unprocessable(c, apperrors.UploadInvalidFileType, "Only JPEG, PNG, WebP and GIF images are allowed")
		return
	}
	if req.Size > 0 {
		if err := ctrl.storage.ValidateFileSize(req.Size); err != nil {
			apperrors.Unprocessable(c, apperrors.UploadInvalidFileType, "The file is too large")
			return
		}
	}

	presigned, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, "products")
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to prepare the upload")
		return
	}

	log.Info("Presigned upload URL issued", map[string]interface{}{
		"key": presigned.Key,
	})

	c.JSON(http.StatusOK, presigned)
}
