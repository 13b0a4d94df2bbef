// Package i18n provides internationalization support for the cart service.
// It handles translation of user-facing API and notification messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.invalid_item_id":      "Invalid cart item id",
			"error.internal_error":       "An unexpected error occurred",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.validation.product_id": "productId: must be a positive integer",
			"error.validation.quantity":   "quantity: must be a positive integer",

			// Success messages
			"success.cart_retrieved":    "Cart retrieved successfully",
			"success.cart_item_added":   "Item added to cart successfully",
			"success.cart_item_updated": "Cart item updated successfully",
			"success.cart_item_removed": "Item removed from cart successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.invalid_item_id":      "Identificador de item inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.validation.product_id": "productId: deve ser um inteiro positivo",
			"error.validation.quantity":   "quantity: deve ser um inteiro positivo",

			// Success messages
			"success.cart_retrieved":    "Carrinho recuperado com sucesso",
			"success.cart_item_added":   "Item adicionado ao carrinho com sucesso",
			"success.cart_item_updated": "Item do carrinho atualizado com sucesso",
			"success.cart_item_removed": "Item removido do carrinho com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":      "Ongeldig verzoek",
			"error.invalid_request_body": "Ongeldige aanvraag body",
			"error.invalid_item_id":      "Ongeldig artikel-id",
			"error.internal_error":       "Er is een onverwachte fout opgetreden",
			"error.not_found":            "Niet gevonden",
			"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
			"error.validation.product_id": "productId: moet een positief geheel getal zijn",
			"error.validation.quantity":   "quantity: moet een positief geheel getal zijn",

			// Success messages
			"success.cart_retrieved":    "Winkelwagen succesvol opgehaald",
			"success.cart_item_added":   "Artikel succesvol toegevoegd aan winkelwagen",
			"success.cart_item_updated": "Winkelwagenartikel succesvol bijgewerkt",
			"success.cart_item_removed": "Artikel succesvol verwijderd uit winkelwagen",
		},
	}
}
