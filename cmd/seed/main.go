package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/msolera/catalog-backend/config"
	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/internal/app/service"
	"github.com/msolera/catalog-backend/internal/db"
	"github.com/msolera/catalog-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Imports an XLSX catalog into the products tables. Expected columns:
// type | status | price | main_image_url | name_es | description_es | name_en | description_en
// The first row is treated as a header and skipped.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}
	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{Level: "warn", Format: "console"})

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())
	productService := service.NewProductService(productRepo, db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	inputs, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(inputs))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	for i, input := range inputs {
		if _, err := productService.CreateProduct(input, cfg.Locale.Default); err != nil {
			fmt.Printf("Row %d skipped: %v\n", i+2, err)
			continue
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", imported)
}

func readProductsFromXLSX(filePath string) ([]service.ProductInput, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found")
	}

	inputs := make([]service.ProductInput, 0, len(rows)-1)
	for i, row := range rows[1:] {
		input, err := rowToInput(row)
		if err != nil {
			fmt.Printf("Row %d skipped: %v\n", i+2, err)
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func rowToInput(row []string) (service.ProductInput, error) {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	price, err := strconv.ParseFloat(cell(2), 64)
	if err != nil {
		return service.ProductInput{}, fmt.Errorf("invalid price %q", cell(2))
	}

	input := service.ProductInput{
		Status:       model.ProductStatus(cell(1)),
		Type:         model.ProductType(cell(0)),
		Price:        &price,
		Translations: map[string]service.TranslationInput{},
	}
	if url := cell(3); url != "" {
		input.MainImageURL = &url
	}

	if name := cell(4); name != "" {
		input.Translations["es"] = service.TranslationInput{
			Name:        name,
			Description: optional(cell(5)),
		}
	}
	if name := cell(6); name != "" {
		input.Translations["en"] = service.TranslationInput{
			Name:        name,
			Description: optional(cell(7)),
		}
	}
	if len(input.Translations) == 0 {
		return service.ProductInput{}, fmt.Errorf("row has no translations")
	}
	return input, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
