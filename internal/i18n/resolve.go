// Package i18n implements the locale-fallback rule used to pick display
// strings out of a set of translation rows.
package i18n

// Entry is one locale-tagged translation row.
type Entry struct {
	Locale      string
	Name        string
	Description *string
}

// Resolve picks the best translation for the requested locale: the entry
// whose locale matches exactly, else the first entry in stored order, else
// nothing. There is no partial-locale matching ("en" never matches "en-US").
func Resolve(entries []Entry, locale string) (Entry, bool) {
	for _, e := range entries {
		if e.Locale == locale {
			return e, true
		}
	}
	if len(entries) > 0 {
		return entries[0], true
	}
	return Entry{}, false
}
