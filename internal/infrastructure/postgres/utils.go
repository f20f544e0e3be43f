package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/geocatalog-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// writeError traduce errores de escritura: unicidad y llaves foráneas se reportan como
// domain.ErrConflict; el resto se envuelve con la operación.
func writeError(op string, err error) error {
	if isUniqueViolation(err) || isForeignKeyViolation(err) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
			return fmt.Errorf("%w: %s (%s)", domain.ErrConflict, op, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s", domain.ErrConflict, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
