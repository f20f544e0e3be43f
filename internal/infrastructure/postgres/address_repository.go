package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación de AddressRepository (usable con pool o tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

const addressColumns = `id, street, exterior_number, interior_number, postal_code, locality_id, customer_id, created_at, updated_at`

// Create persiste una nueva dirección y asigna su ID.
func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	query := `
		INSERT INTO addresses (street, exterior_number, interior_number, postal_code, locality_id, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.Street, a.ExteriorNumber, a.InteriorNumber, a.PostalCode, a.LocalityID, a.CustomerID,
		a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return writeError("insert address", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID.
func (r *AddressRepo) GetByID(ctx context.Context, id int64) (*entity.Address, error) {
	return r.one(ctx, "get address", `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id)
}

// GetByCustomerID obtiene la dirección de un cliente.
func (r *AddressRepo) GetByCustomerID(ctx context.Context, customerID int64) (*entity.Address, error) {
	return r.one(ctx, "get address by customer",
		`SELECT `+addressColumns+` FROM addresses WHERE customer_id = $1 ORDER BY id LIMIT 1`, customerID)
}

// List lista todas las direcciones.
func (r *AddressRepo) List(ctx context.Context) ([]*entity.Address, error) {
	rows, err := r.q.Query(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update actualiza los campos escalares y la localidad de una dirección.
func (r *AddressRepo) Update(ctx context.Context, a *entity.Address) error {
	query := `
		UPDATE addresses
		SET street = $2, exterior_number = $3, interior_number = $4, postal_code = $5,
		    locality_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Street, a.ExteriorNumber, a.InteriorNumber, a.PostalCode, a.LocalityID, a.UpdatedAt,
	)
	if err != nil {
		return writeError("update address", err)
	}
	return nil
}

// Delete elimina una dirección por ID.
func (r *AddressRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id); err != nil {
		return writeError("delete address", err)
	}
	return nil
}

// DeleteByCustomerID elimina todas las direcciones de un cliente.
func (r *AddressRepo) DeleteByCustomerID(ctx context.Context, customerID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM addresses WHERE customer_id = $1`, customerID)
	if err != nil {
		return 0, writeError("delete customer addresses", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AddressRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Address, error) {
	a, err := scanAddress(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

func scanAddress(row pgx.Row) (*entity.Address, error) {
	var a entity.Address
	err := row.Scan(
		&a.ID, &a.Street, &a.ExteriorNumber, &a.InteriorNumber, &a.PostalCode,
		&a.LocalityID, &a.CustomerID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
