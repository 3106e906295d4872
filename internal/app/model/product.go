package model

import (
	"time"
)

type ProductType string

const (
	TypeSimple      ProductType = "simple"
	TypeOptionGroup ProductType = "option_group"
	TypePack        ProductType = "pack"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is the catalog root entity. Display name and description live in
// ProductTranslation rows, one per locale; for type pack the constituents
// live in PackItem pivot rows, for type option_group in child Option rows.
type Product struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	MainImageURL *string       `gorm:"size:255" json:"main_image_url"`
	Status       ProductStatus `gorm:"type:varchar(20);not null;default:'inactive'" json:"status"`
	Type         ProductType   `gorm:"type:varchar(20);not null;default:'simple'" json:"type"`
	Price        float64       `gorm:"not null" json:"price"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// Relationships
	Translations []ProductTranslation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Images       []ProductImage       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Options      []Option             `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Offers       []Offer              `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	PackItems    []PackItem           `gorm:"foreignKey:PackID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ValidType reports whether t is one of the known product types.
func ValidType(t ProductType) bool {
	switch t {
	case TypeSimple, TypeOptionGroup, TypePack:
		return true
	}
	return false
}

// ValidProductStatus reports whether s is one of the known product statuses.
func ValidProductStatus(s ProductStatus) bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}
