// Package normalizer canonicaliza nombres del catálogo geográfico para compararlos y persistirlos.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks bloque Unicode "Combining Diacritical Marks" (U+0300–U+036F).
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize pasa el nombre a minúsculas, lo descompone en NFD y elimina las marcas
// diacríticas combinantes. "México" -> "mexico". Es idempotente.
func Normalize(name string) string {
	return StripAccents(strings.ToLower(name))
}

// StripAccents elimina las marcas diacríticas sin alterar mayúsculas. "Mérida" -> "Merida".
func StripAccents(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	out, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return out
}
