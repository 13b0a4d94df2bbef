package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestTranslate covers locale lookup and fallbacks.
func TestTranslate(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      SuccessKeyCartRetrieved,
			locale:   "en",
			expected: "Cart retrieved successfully",
		},
		{
			name:     "portuguese message",
			key:      SuccessKeyCartItemRemoved,
			locale:   "pt",
			expected: "Item removido do carrinho com sucesso",
		},
		{
			name:     "dutch message",
			key:      ErrKeyInvalidRequestBody,
			locale:   "nl",
			expected: "Ongeldige aanvraag body",
		},
		{
			name:     "unknown locale falls back to english",
			key:      ErrKeyInternalError,
			locale:   "de",
			expected: "An unexpected error occurred",
		},
		{
			name:     "empty locale uses default",
			key:      ErrKeyRateLimitExceeded,
			locale:   "",
			expected: "Too many requests, please try again later",
		},
		{
			name:     "unknown key returns the key",
			key:      "error.nope",
			locale:   "en",
			expected: "error.nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Translate(tt.key, tt.locale))
		})
	}
}

// TestGetLocale covers Accept-Language parsing.
func TestGetLocale(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "en"},
		{name: "simple locale", header: "pt", expected: "pt"},
		{name: "locale with region", header: "pt-BR,pt;q=0.9", expected: "pt"},
		{name: "quality list picks first", header: "nl;q=0.9,en;q=0.8", expected: "nl"},
		{name: "unsupported locale", header: "fr-FR", expected: "en"},
		{name: "uppercase normalized", header: "PT", expected: "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

// TestGetTranslatorSingleton verifies the shared instance.
func TestGetTranslatorSingleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}
