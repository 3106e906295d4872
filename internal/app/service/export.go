package service

import (
	"fmt"
	"strings"

	"github.com/msolera/catalog-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"ID", "Name", "Type", "Status", "Price", "Main image", "Locales", "Created"}

// ExportCatalog renders the full product list as an XLSX workbook for the
// admin download button. Display names resolve with the same locale
// fallback the JSON endpoints use.
func (s *productService) ExportCatalog(locale string) ([]byte, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load products for export", err)
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheet, "A1", endHeader, headerStyle)

	for i := range products {
		product := &products[i]
		view := buildProductView(product, locale, true)

		locales := make([]string, 0, len(product.Translations))
		for _, tr := range product.Translations {
			locales = append(locales, tr.Locale)
		}

		mainImage := ""
		if product.MainImageURL != nil {
			mainImage = *product.MainImageURL
		}

		row := i + 2
		values := []interface{}{
			product.ID,
			*view.Name,
			string(product.Type),
			string(product.Status),
			product.Price,
			mainImage,
			strings.Join(locales, ","),
			product.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to render catalog export", err)
		return nil, fmt.Errorf("failed to render catalog export: %w", err)
	}

	logger.Info("Catalog exported", map[string]interface{}{
		"products": len(products),
		"locale":   locale,
	})
	return buf.Bytes(), nil
}
