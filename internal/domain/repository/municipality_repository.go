package repository

import (
	"context"

	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
)

// MunicipalityRepository define el puerto de persistencia para Municipality.
type MunicipalityRepository interface {
	Create(ctx context.Context, m *entity.Municipality) error
	GetByID(ctx context.Context, id int64) (*entity.Municipality, error)
	// FindByName busca en todo el catálogo (no por estado), sin distinguir mayúsculas.
	FindByName(ctx context.Context, name string) (*entity.Municipality, error)
	List(ctx context.Context) ([]*entity.Municipality, error)
	ListByState(ctx context.Context, stateID int64) ([]*entity.Municipality, error)
	Update(ctx context.Context, m *entity.Municipality) error
	Delete(ctx context.Context, id int64) error
}
