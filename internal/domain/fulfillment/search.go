package fulfillment

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FoldTR pasa a mayúsculas con reglas turcas (i→İ, ı→I), que es como el ERP guarda los nombres.
// cases.Caser tiene estado: uno por llamada.
func FoldTR(s string) string {
	return cases.Upper(language.Turkish).String(strings.TrimSpace(s))
}

// MatchesSearch indica si alguno de los campos contiene la búsqueda (sin distinguir mayúsculas).
func MatchesSearch(query string, fields ...string) bool {
	q := FoldTR(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(FoldTR(f), q) {
			return true
		}
	}
	return false
}
