package util

import (
	"strings"
	"unicode"
)

var slugReplacements = map[rune]string{
	'á': "a", 'é': "e", 'í': "i", 'ó': "o", 'ú': "u",
	'ü': "u", 'ñ': "n", 'ç': "c",
}

// Slugify turns a display name into a URL-safe slug: lowercase ASCII,
// hyphen-separated, common Spanish diacritics folded.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens

	for _, r := range strings.ToLower(name) {
		if repl, ok := slugReplacements[r]; ok {
			b.WriteString(repl)
			lastHyphen = false
			continue
		}
		if unicode.IsLetter(r) && r < unicode.MaxASCII || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
