package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// NewTxRunner construye el runner con el pool y el nivel de aislamiento
// ("read committed", "repeatable read", "serializable"; vacío = el del servidor).
func NewTxRunner(pool *pgxpool.Pool, isolation string) (*TxRunner, error) {
	level, err := parseIsolation(isolation)
	if err != nil {
		return nil, err
	}
	return &TxRunner{pool: pool, opts: pgx.TxOptions{IsoLevel: level}}, nil
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := r.pool.BeginTx(ctx, r.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepositories construye todos los repositorios sobre el mismo Querier (pool o tx).
func NewRepositories(q Querier) repository.Repositories {
	return repository.Repositories{
		States:         NewStateRepository(q),
		Municipalities: NewMunicipalityRepository(q),
		Localities:     NewLocalityRepository(q),
		Addresses:      NewAddressRepository(q),
		Customers:      NewCustomerRepository(q),
	}
}

func parseIsolation(s string) (pgx.TxIsoLevel, error) {
	switch level := pgx.TxIsoLevel(s); level {
	case "", pgx.ReadCommitted, pgx.RepeatableRead, pgx.Serializable:
		return level, nil
	default:
		return "", fmt.Errorf("nivel de aislamiento no soportado: %q", s)
	}
}
