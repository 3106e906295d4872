package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/internal/app/service"
	"github.com/msolera/catalog-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOfferControllerTest(t *testing.T) (*OfferController, *gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	offerRepo := repository.NewOfferRepository(testDB)
	offerService := service.NewOfferService(offerRepo, productRepo, testDB)
	offerController := NewOfferController(offerService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return offerController, router, testDB
}

func TestOfferController_CreateOffer(t *testing.T) {
	controller, router, testDB := setupOfferControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)

	router.POST("/offers", controller.CreateOffer)

	today := time.Now().Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	body := map[string]interface{}{
		"product_id":  product.ID,
		"offer_price": 9.9,
		"start_date":  today,
		"end_date":    nextWeek,
		"status":      "active",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/offers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	offer := response["offer"].(map[string]interface{})
	assert.Equal(t, 9.9, offer["offer_price"])
	assert.Equal(t, "camiseta", offer["product_name"])
}

func TestOfferController_CreateOffer_PastStart(t *testing.T) {
	controller, router, testDB := setupOfferControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)

	router.POST("/offers", controller.CreateOffer)

	body := map[string]interface{}{
		"product_id":  product.ID,
		"offer_price": 9.9,
		"start_date":  time.Now().AddDate(0, 0, -3).Format("2006-01-02"),
		"end_date":    time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"status":      "active",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/offers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	fields := response["fields"].(map[string]interface{})
	assert.Contains(t, fields, "start_date")
}

func TestOfferController_UpdateOffer_EmptyPatch(t *testing.T) {
	controller, router, testDB := setupOfferControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)
	offer := &model.Offer{
		ProductID:  product.ID,
		OfferPrice: 9.9,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, 7),
		Status:     model.OfferStatusActive,
	}
	require.NoError(t, testDB.Create(offer).Error)

	router.PUT("/offers/:id", controller.UpdateOffer)

	req := httptest.NewRequest(http.MethodPut, "/offers/1", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored model.Offer
	require.NoError(t, testDB.First(&stored, offer.ID).Error)
	assert.Equal(t, 9.9, stored.OfferPrice)
}

func TestOfferController_ListOffers(t *testing.T) {
	controller, router, testDB := setupOfferControllerTest(t)

	product := seedProduct(t, testDB, "camiseta", model.ProductStatusActive)
	for _, daysAhead := range []int{1, 5} {
		require.NoError(t, testDB.Create(&model.Offer{
			ProductID:  product.ID,
			OfferPrice: 9.9,
			StartDate:  time.Now().AddDate(0, 0, daysAhead),
			EndDate:    time.Now().AddDate(0, 0, daysAhead+7),
			Status:     model.OfferStatusScheduled,
		}).Error)
	}

	router.GET("/offers", controller.ListOffers)

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(2), response["count"])
}

func TestOfferController_DeleteOffer_NotFound(t *testing.T) {
	controller, router, _ := setupOfferControllerTest(t)

	router.DELETE("/offers/:id", controller.DeleteOffer)

	req := httptest.NewRequest(http.MethodDelete, "/offers/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
