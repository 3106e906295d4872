package model

import (
	"github.com/msolera/catalog-backend/internal/i18n"
)

// ProductTranslationEntries adapts translation rows for the locale resolver,
// preserving stored order.
func ProductTranslationEntries(translations []ProductTranslation) []i18n.Entry {
	entries := make([]i18n.Entry, 0, len(translations))
	for _, t := range translations {
		entries = append(entries, i18n.Entry{
			Locale:      t.Locale,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return entries
}

// OptionTranslationEntries adapts option translation rows for the locale
// resolver, preserving stored order.
func OptionTranslationEntries(translations []OptionTranslation) []i18n.Entry {
	entries := make([]i18n.Entry, 0, len(translations))
	for _, t := range translations {
		entries = append(entries, i18n.Entry{
			Locale:      t.Locale,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return entries
}
