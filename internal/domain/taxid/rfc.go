// Package taxid valida identificadores fiscales de clientes (RFC del SAT, México).
// Solo se valida la estructura; la homoclave no se recalcula.
package taxid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"
)

// ErrInvalidRFC agrupa los errores de formato de RFC.
var ErrInvalidRFC = errors.New("RFC inválido")

// Longitudes válidas según el tipo de contribuyente.
const (
	LengthMoral  = 12 // persona moral: 3 letras + fecha + homoclave
	LengthFisica = 13 // persona física: 4 letras + fecha + homoclave
)

var rfcPattern = regexp.MustCompile(`^[A-ZÑ&]{3,4}([0-9]{6})[A-Z0-9]{2}[A0-9]$`)

// ValidateRFC verifica el RFC: prefijo de 3 o 4 letras, fecha AAMMDD existente y homoclave
// de 3 caracteres cuyo último dígito es numérico o 'A'. Se espera en mayúsculas.
func ValidateRFC(rfc string) error {
	m := rfcPattern.FindStringSubmatch(rfc)
	if m == nil {
		return fmt.Errorf("%w: formato no reconocido", ErrInvalidRFC)
	}
	if !validDate(m[1]) {
		return fmt.Errorf("%w: fecha %s inexistente", ErrInvalidRFC, m[1])
	}
	return nil
}

// IsMoral indica si el RFC tiene la longitud de una persona moral.
func IsMoral(rfc string) bool {
	return utf8.RuneCountInString(rfc) == LengthMoral
}

// validDate acepta AAMMDD si la fecha existe en 19AA o en 20AA (el siglo no viene en el RFC).
func validDate(s string) bool {
	yy, _ := strconv.Atoi(s[0:2])
	mm, _ := strconv.Atoi(s[2:4])
	dd, _ := strconv.Atoi(s[4:6])
	if mm < 1 || mm > 12 || dd < 1 {
		return false
	}
	for _, century := range []int{1900, 2000} {
		t := time.Date(century+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
		if t.Month() == time.Month(mm) && t.Day() == dd {
			return true
		}
	}
	return false
}
