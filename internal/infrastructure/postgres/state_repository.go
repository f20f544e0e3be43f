package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var _ repository.StateRepository = (*StateRepo)(nil)

// StateRepo implementación de StateRepository (usable con pool o tx).
type StateRepo struct {
	q Querier
}

// NewStateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStateRepository(q Querier) *StateRepo {
	return &StateRepo{q: q}
}

const stateColumns = `id, name, created_at, updated_at`

// Create persiste un nuevo estado y asigna su ID.
func (r *StateRepo) Create(ctx context.Context, s *entity.State) error {
	query := `
		INSERT INTO states (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.Name, s.CreatedAt, s.UpdatedAt).Scan(&s.ID); err != nil {
		return writeError("insert state", err)
	}
	return nil
}

// GetByID obtiene un estado por ID.
func (r *StateRepo) GetByID(ctx context.Context, id int64) (*entity.State, error) {
	return r.one(ctx, "get state", `SELECT `+stateColumns+` FROM states WHERE id = $1`, id)
}

// FindByName busca un estado por nombre sin distinguir mayúsculas.
func (r *StateRepo) FindByName(ctx context.Context, name string) (*entity.State, error) {
	return r.one(ctx, "find state by name",
		`SELECT `+stateColumns+` FROM states WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`, name)
}

// List lista todos los estados.
func (r *StateRepo) List(ctx context.Context) ([]*entity.State, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stateColumns+` FROM states ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()
	var list []*entity.State
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un estado.
func (r *StateRepo) Update(ctx context.Context, s *entity.State) error {
	_, err := r.q.Exec(ctx, `UPDATE states SET name = $2, updated_at = $3 WHERE id = $1`,
		s.ID, s.Name, s.UpdatedAt)
	if err != nil {
		return writeError("update state", err)
	}
	return nil
}

// Delete elimina un estado por ID.
func (r *StateRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM states WHERE id = $1`, id); err != nil {
		return writeError("delete state", err)
	}
	return nil
}

func (r *StateRepo) one(ctx context.Context, op, query string, args ...any) (*entity.State, error) {
	var s entity.State
	err := r.q.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
