package repository

import (
	"context"

	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
)

// LocalityRepository define el puerto de persistencia para Locality.
type LocalityRepository interface {
	Create(ctx context.Context, l *entity.Locality) error
	GetByID(ctx context.Context, id int64) (*entity.Locality, error)
	// FindByMunicipalityAndName busca una localidad por nombre exacto dentro de un municipio.
	FindByMunicipalityAndName(ctx context.Context, municipalityID int64, name string) (*entity.Locality, error)
	// GetAncestry devuelve la localidad con su municipio y estado en una sola consulta.
	GetAncestry(ctx context.Context, id int64) (*entity.LocalityAncestry, error)
	List(ctx context.Context) ([]*entity.Locality, error)
	ListByMunicipality(ctx context.Context, municipalityID int64) ([]*entity.Locality, error)
	Update(ctx context.Context, l *entity.Locality) error
	Delete(ctx context.Context, id int64) error
}
