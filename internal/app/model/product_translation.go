package model

import (
	"time"
)

// ProductTranslation holds the display strings of a product for one locale.
// At most one row exists per (product_id, locale).
type ProductTranslation struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ProductID   uint      `gorm:"not null;uniqueIndex:idx_product_translations_product_locale" json:"product_id"`
	Locale      string    `gorm:"size:5;not null;uniqueIndex:idx_product_translations_product_locale" json:"locale"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Slug        string    `gorm:"size:255" json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (ProductTranslation) TableName() string {
	return "product_translations"
}
