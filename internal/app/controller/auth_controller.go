package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/internal/app/service"
	apperrors "github.com/msolera/catalog-backend/internal/errors"
	"github.com/msolera/catalog-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := bindJSONStrict(c, &req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}
	if req.Email == "" || req.Password == "" {
		apperrors.RespondWithError(c, http.StatusBadRequest, apperrors.ValidationRequired, "Email and password are required")
		return
	}

	result, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password")
			return
		}
		log.Error("Login failed", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"email": result.Email,
			"role":  result.Role,
		},
	})
}

// Me returns the identity behind the presented token.
func (ctrl *AuthController) Me(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}
	role, _ := middleware.GetUserRole(c)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": email,
			"role":  role,
		},
	})
}
