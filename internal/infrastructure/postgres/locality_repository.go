package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var _ repository.LocalityRepository = (*LocalityRepo)(nil)

// LocalityRepo implementación de LocalityRepository (usable con pool o tx).
type LocalityRepo struct {
	q Querier
}

// NewLocalityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocalityRepository(q Querier) *LocalityRepo {
	return &LocalityRepo{q: q}
}

const localityColumns = `id, municipality_id, name, created_at, updated_at`

// Create persiste una nueva localidad y asigna su ID.
func (r *LocalityRepo) Create(ctx context.Context, l *entity.Locality) error {
	query := `
		INSERT INTO localities (municipality_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, l.MunicipalityID, l.Name, l.CreatedAt, l.UpdatedAt).Scan(&l.ID); err != nil {
		return writeError("insert locality", err)
	}
	return nil
}

// GetByID obtiene una localidad por ID.
func (r *LocalityRepo) GetByID(ctx context.Context, id int64) (*entity.Locality, error) {
	return r.one(ctx, "get locality", `SELECT `+localityColumns+` FROM localities WHERE id = $1`, id)
}

// FindByMunicipalityAndName busca una localidad por nombre exacto dentro de un municipio.
func (r *LocalityRepo) FindByMunicipalityAndName(ctx context.Context, municipalityID int64, name string) (*entity.Locality, error) {
	return r.one(ctx, "find locality by name",
		`SELECT `+localityColumns+` FROM localities WHERE municipality_id = $1 AND name = $2`, municipalityID, name)
}

// GetAncestry obtiene localidad, municipio y estado con un solo JOIN.
func (r *LocalityRepo) GetAncestry(ctx context.Context, id int64) (*entity.LocalityAncestry, error) {
	query := `
		SELECT l.id, l.municipality_id, l.name, l.created_at, l.updated_at,
		       m.id, m.state_id, m.name, m.created_at, m.updated_at,
		       s.id, s.name, s.created_at, s.updated_at
		FROM localities l
		JOIN municipalities m ON m.id = l.municipality_id
		JOIN states s ON s.id = m.state_id
		WHERE l.id = $1`
	var a entity.LocalityAncestry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.Locality.ID, &a.Locality.MunicipalityID, &a.Locality.Name, &a.Locality.CreatedAt, &a.Locality.UpdatedAt,
		&a.Municipality.ID, &a.Municipality.StateID, &a.Municipality.Name, &a.Municipality.CreatedAt, &a.Municipality.UpdatedAt,
		&a.State.ID, &a.State.Name, &a.State.CreatedAt, &a.State.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get locality ancestry: %w", err)
	}
	return &a, nil
}

// List lista todas las localidades.
func (r *LocalityRepo) List(ctx context.Context) ([]*entity.Locality, error) {
	return r.many(ctx, `SELECT `+localityColumns+` FROM localities ORDER BY id`)
}

// ListByMunicipality lista las localidades de un municipio.
func (r *LocalityRepo) ListByMunicipality(ctx context.Context, municipalityID int64) ([]*entity.Locality, error) {
	return r.many(ctx, `SELECT `+localityColumns+` FROM localities WHERE municipality_id = $1 ORDER BY id`, municipalityID)
}

// Update actualiza una localidad.
func (r *LocalityRepo) Update(ctx context.Context, l *entity.Locality) error {
	_, err := r.q.Exec(ctx,
		`UPDATE localities SET municipality_id = $2, name = $3, updated_at = $4 WHERE id = $1`,
		l.ID, l.MunicipalityID, l.Name, l.UpdatedAt)
	if err != nil {
		return writeError("update locality", err)
	}
	return nil
}

// Delete elimina una localidad por ID.
func (r *LocalityRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM localities WHERE id = $1`, id); err != nil {
		return writeError("delete locality", err)
	}
	return nil
}

func (r *LocalityRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Locality, error) {
	var l entity.Locality
	err := r.q.QueryRow(ctx, query, args...).Scan(&l.ID, &l.MunicipalityID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}

func (r *LocalityRepo) many(ctx context.Context, query string, args ...any) ([]*entity.Locality, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list localities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Locality
	for rows.Next() {
		var l entity.Locality
		if err := rows.Scan(&l.ID, &l.MunicipalityID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan locality: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
