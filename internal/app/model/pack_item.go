package model

import (
	"time"
)

// PackItem links a pack product to one of its constituent products with a
// quantity. The composite key guarantees a constituent appears at most once
// per pack; re-attaching it replaces the quantity instead of duplicating
// the row.
type PackItem struct {
	PackID    uint      `gorm:"primaryKey;autoIncrement:false" json:"pack_id"`
	ProductID uint      `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Pack    Product `gorm:"foreignKey:PackID;constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PackItem) TableName() string {
	return "pack_products"
}
