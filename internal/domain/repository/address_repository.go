package repository

import (
	"context"

	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
)

// AddressRepository define el puerto de persistencia para Address.
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	GetByID(ctx context.Context, id int64) (*entity.Address, error)
	GetByCustomerID(ctx context.Context, customerID int64) (*entity.Address, error)
	List(ctx context.Context) ([]*entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, id int64) error
	// DeleteByCustomerID elimina todas las direcciones del cliente y devuelve cuántas eran.
	DeleteByCustomerID(ctx context.Context, customerID int64) (int64, error)
}
