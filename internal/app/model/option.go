package model

import (
	"time"
)

type OptionStatus string

const (
	OptionStatusActive   OptionStatus = "active"
	OptionStatusInactive OptionStatus = "inactive"
)

// Option is a sellable variant of an option_group product. Display strings
// live in OptionTranslation rows, one per locale.
type Option struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	ProductID uint         `gorm:"index;not null" json:"product_id"`
	ImageURL  *string      `gorm:"size:255" json:"image_url"`
	Status    OptionStatus `gorm:"type:varchar(20);not null;default:'inactive'" json:"status"`
	Price     float64      `gorm:"not null" json:"price"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Product      Product             `gorm:"foreignKey:ProductID" json:"-"`
	Translations []OptionTranslation `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Option) TableName() string {
	return "options"
}

// ValidOptionStatus reports whether s is one of the known option statuses.
func ValidOptionStatus(s OptionStatus) bool {
	return s == OptionStatusActive || s == OptionStatusInactive
}
