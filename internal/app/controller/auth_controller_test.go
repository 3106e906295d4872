package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/config"
	"github.com/msolera/catalog-backend/internal/app/service"
	"github.com/msolera/catalog-backend/internal/middleware"
	"github.com/msolera/catalog-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthControllerTest(t *testing.T) (*AuthController, *gin.Engine) {
	hash, err := util.HashPassword("correct-horse")
	require.NoError(t, err)

	authService := service.NewAuthService(
		config.AdminConfig{
			Email:        "admin@example.com",
			PasswordHash: hash,
		},
		config.JWTConfig{
			Secret:      "test-jwt-secret",
			TokenExpiry: time.Hour,
		},
	)
	authController := NewAuthController(authService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return authController, router
}

func TestAuthController_Login(t *testing.T) {
	controller, router := setupAuthControllerTest(t)
	router.POST("/auth/login", controller.Login)

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
	}{
		{
			name:     "Valid credentials",
			body:     map[string]string{"email": "admin@example.com", "password": "correct-horse"},
			wantCode: http.StatusOK,
		},
		{
			name:     "Wrong password",
			body:     map[string]string{"email": "admin@example.com", "password": "nope"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "Missing password",
			body:     map[string]string{"email": "admin@example.com"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusOK {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.NotEmpty(t, response["token"])

				claims, err := util.ValidateToken(response["token"].(string), "test-jwt-secret")
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Role)
			}
		})
	}
}

func TestAuthController_Me(t *testing.T) {
	controller, router := setupAuthControllerTest(t)

	authMiddleware := middleware.NewAuthMiddleware("test-jwt-secret")
	router.GET("/auth/me", authMiddleware.Authenticate(), controller.Me)

	token, err := util.GenerateToken("admin@example.com", "admin", "test-jwt-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "admin@example.com", user["email"])
	assert.Equal(t, "admin", user["role"])
}

func TestAuthController_Me_Unauthenticated(t *testing.T) {
	controller, router := setupAuthControllerTest(t)

	authMiddleware := middleware.NewAuthMiddleware("test-jwt-secret")
	router.GET("/auth/me", authMiddleware.Authenticate(), controller.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
