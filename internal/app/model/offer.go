package model

import (
	"time"
)

type OfferStatus string

const (
	OfferStatusActive    OfferStatus = "active"
	OfferStatusInactive  OfferStatus = "inactive"
	OfferStatusScheduled OfferStatus = "scheduled"
	OfferStatusExpired   OfferStatus = "expired"
)

// Offer is a time-bounded promotional price attached to a product. The
// status is operator-set; only IsActive is derived.
type Offer struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	ProductID  uint        `gorm:"index;not null" json:"product_id"`
	OfferPrice float64     `gorm:"not null" json:"offer_price"`
	StartDate  time.Time   `gorm:"not null" json:"start_date"`
	EndDate    time.Time   `gorm:"not null" json:"end_date"`
	Status     OfferStatus `gorm:"type:varchar(20);not null;default:'inactive'" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (Offer) TableName() string {
	return "offers"
}

// IsActive reports whether the offer applies at the given instant:
// status active and start_date <= now <= end_date.
func (o *Offer) IsActive(now time.Time) bool {
	return o.Status == OfferStatusActive &&
		!now.Before(o.StartDate) &&
		!now.After(o.EndDate)
}

// ValidOfferStatus reports whether s is one of the four offer statuses.
func ValidOfferStatus(s OfferStatus) bool {
	switch s {
	case OfferStatusActive, OfferStatusInactive, OfferStatusScheduled, OfferStatusExpired:
		return true
	}
	return false
}
