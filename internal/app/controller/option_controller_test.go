package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/internal/app/service"
	"github.com/msolera/catalog-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOptionControllerTest(t *testing.T) (*OptionController, *gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	optionRepo := repository.NewOptionRepository(testDB)
	optionService := service.NewOptionService(optionRepo, productRepo, testDB)
	optionController := NewOptionController(optionService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return optionController, router, testDB
}

func TestOptionController_CreateOption(t *testing.T) {
	controller, router, testDB := setupOptionControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)

	router.POST("/options", controller.CreateOption)

	price := 4.5
	body := map[string]interface{}{
		"product_id": product.ID,
		"status":     "active",
		"price":      price,
		"translations": []map[string]interface{}{
			{"locale": "es", "name": "Talla M"},
		},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/options", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	option := response["option"].(map[string]interface{})
	assert.Equal(t, "Talla M", option["name"])
	assert.Equal(t, "camiseta", option["product_name"])
}

func TestOptionController_CreateOption_ValidationError(t *testing.T) {
	controller, router, testDB := setupOptionControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)

	router.POST("/options", controller.CreateOption)

	// Blank name in the only translation.
	body := map[string]interface{}{
		"product_id": product.ID,
		"status":     "active",
		"price":      4.5,
		"translations": []map[string]interface{}{
			{"locale": "es", "name": ""},
		},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/options", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	fields := response["fields"].(map[string]interface{})
	assert.Contains(t, fields, "translations.0.name")
}

func TestOptionController_UpdateOption_PriceOnly(t *testing.T) {
	controller, router, testDB := setupOptionControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)
	option := &model.Option{
		ProductID: product.ID,
		Status:    model.OptionStatusActive,
		Price:     4.5,
	}
	require.NoError(t, testDB.Create(option).Error)
	require.NoError(t, testDB.Create(&model.OptionTranslation{
		OptionID: option.ID,
		Locale:   "es",
		Name:     "Talla M",
	}).Error)

	router.PUT("/options/:id", controller.UpdateOption)

	payload := []byte(`{"price": 6.0}`)
	req := httptest.NewRequest(http.MethodPut, "/options/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored model.Option
	require.NoError(t, testDB.First(&stored, option.ID).Error)
	assert.Equal(t, 6.0, stored.Price)
	assert.Equal(t, model.OptionStatusActive, stored.Status)
}

func TestOptionController_GetOptionByID_NotFound(t *testing.T) {
	controller, router, _ := setupOptionControllerTest(t)

	router.GET("/options/:id", controller.GetOptionByID)

	req := httptest.NewRequest(http.MethodGet, "/options/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOptionController_DeleteOption(t *testing.T) {
	controller, router, testDB := setupOptionControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)
	option := &model.Option{
		ProductID: product.ID,
		Status:    model.OptionStatusActive,
		Price:     4.5,
	}
	require.NoError(t, testDB.Create(option).Error)

	router.DELETE("/options/:id", controller.DeleteOption)

	req := httptest.NewRequest(http.MethodDelete, "/options/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, testDB.Model(&model.Option{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
