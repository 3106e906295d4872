package service

import (
	"testing"

	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOptionServiceTest(t *testing.T) (OptionService, ProductService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productRepo := repository.NewProductRepository(testDB)
	optionRepo := repository.NewOptionRepository(testDB)
	optionService := NewOptionService(optionRepo, productRepo, testDB)
	productService := NewProductService(productRepo, testDB)
	return optionService, productService, testDB
}

func createOptionGroup(t *testing.T, products ProductService, name string) *ProductView {
	t.Helper()
	return mustCreateProduct(t, products, ProductInput{
		Status:       model.ProductStatusActive,
		Type:         model.TypeOptionGroup,
		Price:        floatPtr(10),
		Translations: map[string]TranslationInput{"es": {Name: name}},
	})
}

func TestOptionService_CreateOption(t *testing.T) {
	options, products, _ := setupOptionServiceTest(t)

	group := createOptionGroup(t, products, "Camiseta")

	view, err := options.CreateOption(CreateOptionInput{
		ProductID: group.ID,
		Status:    model.OptionStatusActive,
		Price:     floatPtr(12.5),
		Translations: []OptionTranslationInput{
			{Locale: "es", Name: "Talla M"},
			{Locale: "en", Name: "Size M"},
		},
	}, "es")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, group.ID, view.ProductID)
	require.NotNil(t, view.Name)
	assert.Equal(t, "Talla M", *view.Name)
	require.NotNil(t, view.ProductName)
	assert.Equal(t, "Camiseta", *view.ProductName)
}

func TestOptionService_CreateOption_Validation(t *testing.T) {
	options, products, _ := setupOptionServiceTest(t)

	group := createOptionGroup(t, products, "Camiseta")
	pack := mustCreateProduct(t, products, ProductInput{
		Status:       model.ProductStatusActive,
		Type:         model.TypePack,
		Price:        floatPtr(30),
		Translations: map[string]TranslationInput{"es": {Name: "Pack"}},
		PackItems:    []PackItemInput{{ProductID: group.ID, Quantity: 1}},
	})

	tests := []struct {
		name      string
		input     CreateOptionInput
		wantField string
	}{
		{
			name: "Missing product",
			input: CreateOptionInput{
				ProductID:    9999,
				Status:       model.OptionStatusActive,
				Price:        floatPtr(5),
				Translations: []OptionTranslationInput{{Locale: "es", Name: "Talla S"}},
			},
			wantField: "product_id",
		},
		{
			name: "Parent is a pack",
			input: CreateOptionInput{
				ProductID:    pack.ID,
				Status:       model.OptionStatusActive,
				Price:        floatPtr(5),
				Translations: []OptionTranslationInput{{Locale: "es", Name: "Talla S"}},
			},
			wantField: "product_id",
		},
		{
			name: "No translations",
			input: CreateOptionInput{
				ProductID: group.ID,
				Status:    model.OptionStatusActive,
				Price:     floatPtr(5),
			},
			wantField: "translations",
		},
		{
			name: "Blank translation name",
			input: CreateOptionInput{
				ProductID:    group.ID,
				Status:       model.OptionStatusActive,
				Price:        floatPtr(5),
				Translations: []OptionTranslationInput{{Locale: "es", Name: "  "}},
			},
			wantField: "translations.0.name",
		},
		{
			name: "Missing price",
			input: CreateOptionInput{
				ProductID:    group.ID,
				Status:       model.OptionStatusActive,
				Translations: []OptionTranslationInput{{Locale: "es", Name: "Talla S"}},
			},
			wantField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := options.CreateOption(tt.input, "es")
			assert.Nil(t, view)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.wantField)
		})
	}
}

func TestOptionService_UpdateOption_Partial(t *testing.T) {
	options, products, testDB := setupOptionServiceTest(t)

	group := createOptionGroup(t, products, "Camiseta")
	created, err := options.CreateOption(CreateOptionInput{
		ProductID:    group.ID,
		Status:       model.OptionStatusActive,
		Price:        floatPtr(12.5),
		Translations: []OptionTranslationInput{{Locale: "es", Name: "Talla M"}},
	}, "es")
	require.NoError(t, err)

	// Only the price changes; everything else keeps its stored value.
	view, err := options.UpdateOption(created.ID, UpdateOptionInput{
		Price: floatPtr(15),
	}, "es")
	require.NoError(t, err)
	assert.Equal(t, 15.0, view.Price)
	assert.Equal(t, model.OptionStatusActive, view.Status)
	require.NotNil(t, view.Name)
	assert.Equal(t, "Talla M", *view.Name)

	// A translation update can introduce a locale that did not exist.
	_, err = options.UpdateOption(created.ID, UpdateOptionInput{
		Translations: []OptionTranslationInput{
			{Locale: "es", Name: "Talla M grande"},
			{Locale: "en", Name: "Size M"},
		},
	}, "es")
	require.NoError(t, err)

	var count int64
	require.NoError(t, testDB.Model(&model.OptionTranslation{}).
		Where("option_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	english, err := options.GetOptionByID(created.ID, "en")
	require.NoError(t, err)
	require.NotNil(t, english.Name)
	assert.Equal(t, "Size M", *english.Name)
}

func TestOptionService_UpdateOption_NotFound(t *testing.T) {
	options, _, _ := setupOptionServiceTest(t)

	_, err := options.UpdateOption(9999, UpdateOptionInput{Price: floatPtr(5)}, "es")
	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestOptionService_DeleteOption(t *testing.T) {
	options, products, testDB := setupOptionServiceTest(t)

	group := createOptionGroup(t, products, "Camiseta")
	created, err := options.CreateOption(CreateOptionInput{
		ProductID:    group.ID,
		Status:       model.OptionStatusActive,
		Price:        floatPtr(12.5),
		Translations: []OptionTranslationInput{{Locale: "es", Name: "Talla M"}},
	}, "es")
	require.NoError(t, err)

	require.NoError(t, options.DeleteOption(created.ID))

	var optionCount, translationCount int64
	require.NoError(t, testDB.Model(&model.Option{}).
		Where("id = ?", created.ID).Count(&optionCount).Error)
	require.NoError(t, testDB.Model(&model.OptionTranslation{}).
		Where("option_id = ?", created.ID).Count(&translationCount).Error)
	assert.Equal(t, int64(0), optionCount)
	assert.Equal(t, int64(0), translationCount)

	assert.ErrorIs(t, options.DeleteOption(created.ID), ErrOptionNotFound)
}

func TestOptionService_ListOptions(t *testing.T) {
	options, products, _ := setupOptionServiceTest(t)

	group := createOptionGroup(t, products, "Camiseta")
	for _, name := range []string{"Talla S", "Talla M"} {
		_, err := options.CreateOption(CreateOptionInput{
			ProductID:    group.ID,
			Status:       model.OptionStatusActive,
			Price:        floatPtr(5),
			Translations: []OptionTranslationInput{{Locale: "es", Name: name}},
		}, "es")
		require.NoError(t, err)
	}

	views, err := options.ListOptions("es")
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		require.NotNil(t, v.ProductName)
		assert.Equal(t, "Camiseta", *v.ProductName)
	}
}
