package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/geocatalog-api/internal/domain/normalizer"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"México":             "mexico",
		"MEXICO":             "mexico",
		"San Andrés Tuxtla":  "san andres tuxtla",
		"Peñón de los Baños": "penon de los banos",
		"Zacatlán":           "zacatlan",
		"":                   "",
		"ya normalizado":     "ya normalizado",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizer.Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{
		"México", "Mérida", "ÁÉÍÓÚ", "Ñuñoa", "Coyoacán", "  espacios  ",
		"é", "İstanbul", "Ōsaka", "Ça va", "mixto Ü y ü",
	}
	for _, s := range inputs {
		once := normalizer.Normalize(s)
		assert.Equal(t, once, normalizer.Normalize(once), "Normalize no es idempotente para %q", s)
	}
}

func TestNormalize_FormaCompuestaYDescompuesta(t *testing.T) {
	// "é" precompuesta (U+00E9) y "e" + acento combinante (U+0301) normalizan igual.
	assert.Equal(t, "cafe", normalizer.Normalize("caf\u00e9"))
	assert.Equal(t, "cafe", normalizer.Normalize("cafe\u0301"))
}

func TestStripAccents_ConservaMayusculas(t *testing.T) {
	assert.Equal(t, "Merida", normalizer.StripAccents("Mérida"))
	assert.Equal(t, "SAN JOSE", normalizer.StripAccents("SAN JOSÉ"))
}
