package parser

import (
	"strings"

	"github.com/resumia/statement-engine/internal/models"
)

// Bank and network markers checked against the raw document text. Detection
// is substring presence only, no anchoring, first match in checked order
// wins. In particular "VISA" is checked before "Mastercard", so a document
// mentioning VISA anywhere in a footer is classified as VISA; downstream
// extractor selection depends on this ordering.
var (
	nacionMarkers = []string{
		"Banco de la Nación Argentina",
		"Banco Nación",
	}
	galiciaMarkers = []string{
		"Banco Galicia",
		"Resumen de tarjeta de credito VISA",
		"bancogalicia.com",
	}
	visaMarkers       = []string{"VISA"}
	mastercardMarkers = []string{"Mastercard", "MASTERCARD"}
)

// Classify identifies the issuing bank and card network of a statement from
// its extracted text. Unrecognized documents yield unknown on either axis;
// that is not an error, the processor falls back to a default format.
func Classify(text string) models.Classification {
	c := models.Classification{
		Bank:    models.BankUnknown,
		Network: models.NetworkUnknown,
	}

	if containsAny(text, nacionMarkers) {
		c.Bank = models.BankNacion
	} else if containsAny(text, galiciaMarkers) {
		c.Bank = models.BankGalicia
	}

	if containsAny(text, visaMarkers) {
		c.Network = models.NetworkVisa
	} else if containsAny(text, mastercardMarkers) {
		c.Network = models.NetworkMastercard
	}

	return c
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
