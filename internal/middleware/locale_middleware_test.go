package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLocaleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(LocaleMiddleware("es"))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetLocaleFromContext(c))
	})

	tests := []struct {
		name           string
		query          string
		acceptLanguage string
		want           string
	}{
		{
			name: "Default locale",
			want: "es",
		},
		{
			name:  "Query parameter",
			query: "?locale=en",
			want:  "en",
		},
		{
			name:           "Query parameter beats header",
			query:          "?locale=en",
			acceptLanguage: "fr-FR,fr;q=0.9",
			want:           "en",
		},
		{
			name:           "First Accept-Language tag",
			acceptLanguage: "fr-FR,fr;q=0.9,en;q=0.8",
			want:           "fr-FR",
		},
		{
			name:           "Oversized tag falls back to default",
			acceptLanguage: "this-is-not-a-tag",
			want:           "es",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestGetLocaleFromContext_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "es", GetLocaleFromContext(c))
}
