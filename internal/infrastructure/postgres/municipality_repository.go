package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var _ repository.MunicipalityRepository = (*MunicipalityRepo)(nil)

// MunicipalityRepo implementación de MunicipalityRepository (usable con pool o tx).
type MunicipalityRepo struct {
	q Querier
}

// NewMunicipalityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMunicipalityRepository(q Querier) *MunicipalityRepo {
	return &MunicipalityRepo{q: q}
}

const municipalityColumns = `id, state_id, name, created_at, updated_at`

// Create persiste un nuevo municipio y asigna su ID.
func (r *MunicipalityRepo) Create(ctx context.Context, m *entity.Municipality) error {
	query := `
		INSERT INTO municipalities (state_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, m.StateID, m.Name, m.CreatedAt, m.UpdatedAt).Scan(&m.ID); err != nil {
		return writeError("insert municipality", err)
	}
	return nil
}

// GetByID obtiene un municipio por ID.
func (r *MunicipalityRepo) GetByID(ctx context.Context, id int64) (*entity.Municipality, error) {
	return r.one(ctx, "get municipality",
		`SELECT `+municipalityColumns+` FROM municipalities WHERE id = $1`, id)
}

// FindByName busca un municipio en todo el catálogo sin distinguir mayúsculas.
func (r *MunicipalityRepo) FindByName(ctx context.Context, name string) (*entity.Municipality, error) {
	return r.one(ctx, "find municipality by name",
		`SELECT `+municipalityColumns+` FROM municipalities WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`, name)
}

// List lista todos los municipios.
func (r *MunicipalityRepo) List(ctx context.Context) ([]*entity.Municipality, error) {
	return r.many(ctx, `SELECT `+municipalityColumns+` FROM municipalities ORDER BY id`)
}

// ListByState lista los municipios de un estado.
func (r *MunicipalityRepo) ListByState(ctx context.Context, stateID int64) ([]*entity.Municipality, error) {
	return r.many(ctx, `SELECT `+municipalityColumns+` FROM municipalities WHERE state_id = $1 ORDER BY id`, stateID)
}

// Update actualiza un municipio.
func (r *MunicipalityRepo) Update(ctx context.Context, m *entity.Municipality) error {
	_, err := r.q.Exec(ctx,
		`UPDATE municipalities SET state_id = $2, name = $3, updated_at = $4 WHERE id = $1`,
		m.ID, m.StateID, m.Name, m.UpdatedAt)
	if err != nil {
		return writeError("update municipality", err)
	}
	return nil
}

// Delete elimina un municipio por ID.
func (r *MunicipalityRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM municipalities WHERE id = $1`, id); err != nil {
		return writeError("delete municipality", err)
	}
	return nil
}

func (r *MunicipalityRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Municipality, error) {
	var m entity.Municipality
	err := r.q.QueryRow(ctx, query, args...).Scan(&m.ID, &m.StateID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

func (r *MunicipalityRepo) many(ctx context.Context, query string, args ...any) ([]*entity.Municipality, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list municipalities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Municipality
	for rows.Next() {
		var m entity.Municipality
		if err := rows.Scan(&m.ID, &m.StateID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan municipality: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
