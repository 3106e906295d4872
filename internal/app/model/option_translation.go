package model

import (
	"time"
)

// OptionTranslation holds the display strings of an option for one locale.
// At most one row exists per (option_id, locale).
type OptionTranslation struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OptionID    uint      `gorm:"not null;uniqueIndex:idx_option_translations_option_locale" json:"option_id"`
	Locale      string    `gorm:"size:5;not null;uniqueIndex:idx_option_translations_option_locale" json:"locale"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Option Option `gorm:"foreignKey:OptionID" json:"-"`
}

func (OptionTranslation) TableName() string {
	return "option_translations"
}
