package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/geocatalog-api/internal/domain/taxid"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestValidateRFC cubre personas físicas y morales, fechas límite (años
// bisiestos) y los errores de formato más comunes al capturar el RFC.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateRFC(t *testing.T) {
	cases := []struct {
		rfc   string
		valid bool
	}{
		{"LOAA800101AB1", true},  // persona física
		{"ABC850101AB1", true},   // persona moral
		{"XAXX010101000", true},  // genérico nacional
		{"ÑAÑ990315XY9", true},   // Ñ en el prefijo
		{"&AB850101ABA", true},   // homoclave terminada en A
		{"LOAA000229AB1", true},  // 29 de febrero de 2000
		{"LOAA010229AB1", false}, // 2001 y 1901 no son bisiestos
		{"LOAA801301AB1", false}, // mes 13
		{"LOAA800230AB1", false}, // 30 de febrero
		{"LOAA800100AB1", false}, // día 0
		{"loaa800101ab1", false}, // minúsculas
		{"LO1A800101AB1", false}, // dígito en el prefijo
		{"LOAA800101ABZ", false}, // dígito verificador inválido
		{"LOAAA800101AB1", false},
		{"CORTO", false},
		{"", false},
	}
	for _, tc := range cases {
		err := taxid.ValidateRFC(tc.rfc)
		if tc.valid {
			assert.NoError(t, err, tc.rfc)
		} else {
			assert.ErrorIs(t, err, taxid.ErrInvalidRFC, tc.rfc)
		}
	}
}

func TestIsMoral(t *testing.T) {
	assert.True(t, taxid.IsMoral("ABC850101AB1"))
	assert.True(t, taxid.IsMoral("ÑAÑ990315XY9"))
	assert.False(t, taxid.IsMoral("LOAA800101AB1"))
}
