// Package normalize implementa el folding de texto usado por la búsqueda de
// productos: el catálogo mezcla nombres con y sin tilde ("Café", "Te",
// "Crepé"), así que la comparación se hace sin diacríticos y en minúsculas.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina marcas diacríticas
	norm.NFC,
)

// Fold devuelve s en minúsculas y sin diacríticos ("Café" -> "cafe").
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		// Entrada no normalizable: comparar tal cual en minúsculas
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si needle aparece dentro de haystack ignorando
// mayúsculas y diacríticos.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
