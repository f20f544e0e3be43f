package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

// Verificaciones de existencia. Toda lectura con proyección y toda mutación pasa primero
// por aquí, de modo que ErrNotFound se genera siempre en un único lugar.

// RequireState devuelve el estado o ErrNotFound.
func RequireState(ctx context.Context, r repository.Repositories, id int64) (*entity.State, error) {
	s, err := r.States.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: estado con ID %d no encontrado", domain.ErrNotFound, id)
	}
	return s, nil
}

// RequireMunicipality devuelve el municipio o ErrNotFound.
func RequireMunicipality(ctx context.Context, r repository.Repositories, id int64) (*entity.Municipality, error) {
	m, err := r.Municipalities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: municipio con ID %d no encontrado", domain.ErrNotFound, id)
	}
	return m, nil
}

// RequireLocality devuelve la localidad o ErrNotFound.
func RequireLocality(ctx context.Context, r repository.Repositories, id int64) (*entity.Locality, error) {
	l, err := r.Localities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: localidad con ID %d no encontrada", domain.ErrNotFound, id)
	}
	return l, nil
}

// RequireAddress devuelve la dirección o ErrNotFound.
func RequireAddress(ctx context.Context, r repository.Repositories, id int64) (*entity.Address, error) {
	a, err := r.Addresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: dirección con ID %d no encontrada", domain.ErrNotFound, id)
	}
	return a, nil
}

// firstMatch prueba cada candidato con find y devuelve la primera coincidencia.
func firstMatch[T any](ctx context.Context, find func(context.Context, string) (*T, error), candidates ...string) (*T, error) {
	for _, c := range candidates {
		found, err := find(ctx, c)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}
	return nil, nil
}
