package repository

import (
	"context"

	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
)

// StateRepository define el puerto de persistencia para State.
// Los métodos Get/Find devuelven (nil, nil) cuando no hay fila.
type StateRepository interface {
	Create(ctx context.Context, state *entity.State) error
	GetByID(ctx context.Context, id int64) (*entity.State, error)
	// FindByName busca sin distinguir mayúsculas/minúsculas.
	FindByName(ctx context.Context, name string) (*entity.State, error)
	List(ctx context.Context) ([]*entity.State, error)
	Update(ctx context.Context, state *entity.State) error
	Delete(ctx context.Context, id int64) error
}
