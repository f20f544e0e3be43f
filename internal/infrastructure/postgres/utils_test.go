package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/geocatalog-api/internal/domain"
)

func TestWriteError(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "states_name_key"}
	fk := fmt.Errorf("exec: %w", &pgconn.PgError{Code: codeForeignKeyViolation})
	other := errors.New("conexión cerrada")

	err := writeError("crear estado", unique)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "states_name_key")

	assert.ErrorIs(t, writeError("eliminar municipio", fk), domain.ErrConflict)

	err = writeError("actualizar", other)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, other)
}

func TestParseIsolation(t *testing.T) {
	for _, s := range []string{"", "read committed", "repeatable read", "serializable"} {
		level, err := parseIsolation(s)
		require.NoError(t, err, s)
		assert.Equal(t, pgx.TxIsoLevel(s), level)
	}
	_, err := parseIsolation("chaos")
	assert.Error(t, err)
}
