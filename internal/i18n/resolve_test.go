package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestResolve(t *testing.T) {
	entries := []Entry{
		{Locale: "es", Name: "Camiseta", Description: strPtr("Camiseta de algodon")},
		{Locale: "en", Name: "T-shirt", Description: strPtr("Cotton t-shirt")},
		{Locale: "fr", Name: "T-shirt FR"},
	}

	tests := []struct {
		name      string
		entries   []Entry
		locale    string
		wantName  string
		wantFound bool
	}{
		{
			name:      "Exact locale match",
			entries:   entries,
			locale:    "en",
			wantName:  "T-shirt",
			wantFound: true,
		},
		{
			name:      "Missing locale falls back to first entry",
			entries:   entries,
			locale:    "de",
			wantName:  "Camiseta",
			wantFound: true,
		},
		{
			name:      "No partial locale matching",
			entries:   []Entry{{Locale: "en-US", Name: "Color"}, {Locale: "es", Name: "Color ES"}},
			locale:    "en",
			wantName:  "en-US fallback is first entry",
			wantFound: true,
		},
		{
			name:      "Empty set resolves to nothing",
			entries:   nil,
			locale:    "es",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Resolve(tt.entries, tt.locale)
			assert.Equal(t, tt.wantFound, found)
			if tt.name == "No partial locale matching" {
				// "en" must not match "en-US"; the first stored entry wins.
				assert.Equal(t, "en-US", got.Locale)
				assert.Equal(t, "Color", got.Name)
				return
			}
			if tt.wantFound {
				assert.Equal(t, tt.wantName, got.Name)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	entries := []Entry{
		{Locale: "it", Name: "Maglietta"},
		{Locale: "pt", Name: "Camisola"},
	}

	first, found := Resolve(entries, "es")
	assert.True(t, found)
	for i := 0; i < 5; i++ {
		again, _ := Resolve(entries, "es")
		assert.Equal(t, first, again)
	}
}
