// Package customers administra el agregado Cliente + Dirección: se crea, actualiza y
// elimina como una sola unidad dentro de una transacción.
package customers

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

// CustomerUseCase casos de uso del agregado cliente.
type CustomerUseCase struct {
	tx        repository.TxRunner
	projector *catalog.Projector
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(tx repository.TxRunner, projector *catalog.Projector) *CustomerUseCase {
	return &CustomerUseCase{tx: tx, projector: projector}
}

// Create registra el cliente y su dirección en la misma transacción. Si la localidad no
// existe no se persiste nada.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerView, error) {
	var out *dto.CustomerView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := catalog.RequireLocality(ctx, r, in.LocalityID); err != nil {
			return err
		}
		now := time.Now().UTC()
		customer := &entity.Customer{
			Name:      in.Name,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			RFC:       in.RFC,
			Email:     in.Email,
			Phone:     in.Phone,
			Status:    in.Status,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Customers.Create(ctx, customer); err != nil {
			return err
		}
		customerID := customer.ID
		address := &entity.Address{
			Street:         in.Street,
			ExteriorNumber: in.ExteriorNumber,
			InteriorNumber: in.InteriorNumber,
			PostalCode:     in.PostalCode,
			LocalityID:     in.LocalityID,
			CustomerID:     &customerID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := r.Addresses.Create(ctx, address); err != nil {
			return err
		}
		view, err := uc.projector.Customer(ctx, r, customer, address)
		out = view
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve todos los clientes con su dirección proyectada.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerView, error) {
	var out []dto.CustomerView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		list, err := r.Customers.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.CustomerView, 0, len(list))
		for _, c := range list {
			a, err := r.Addresses.GetByCustomerID(ctx, c.ID)
			if err != nil {
				return err
			}
			view, err := uc.projector.Customer(ctx, r, c, a)
			if err != nil {
				return err
			}
			out = append(out, *view)
		}
		return nil
	})
	return out, err
}

// Get devuelve el cliente con Dirección → Localidad → Municipio → Estado.
func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*dto.CustomerView, error) {
	var out *dto.CustomerView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		c, err := requireCustomer(ctx, r, id)
		if err != nil {
			return err
		}
		a, err := r.Addresses.GetByCustomerID(ctx, id)
		if err != nil {
			return err
		}
		out, err = uc.projector.Customer(ctx, r, c, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update actualiza el cliente y su dirección como una unidad:
// verifica el cliente, localiza su dirección, reparte los campos, aplica ambos cambios
// y devuelve el agregado actualizado.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerView, error) {
	customerPatch, addressPatch := SplitUpdate(in)

	var out *dto.CustomerView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		c, err := requireCustomer(ctx, r, id)
		if err != nil {
			return err
		}
		a, err := r.Addresses.GetByCustomerID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("%w: dirección del cliente con ID %d no encontrada", domain.ErrNotFound, id)
		}

		if !customerPatch.IsEmpty() {
			customerPatch.Apply(c)
			c.UpdatedAt = time.Now().UTC()
			if err := r.Customers.Update(ctx, c); err != nil {
				return err
			}
		}
		if err := catalog.ApplyAddressPatch(ctx, r, a, addressPatch); err != nil {
			return err
		}

		out, err = uc.projector.Customer(ctx, r, c, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove elimina las direcciones del cliente (cero o más) y después el cliente.
// Devuelve el cliente tal como estaba antes de eliminarlo.
func (uc *CustomerUseCase) Remove(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	var out *entity.Customer
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		c, err := requireCustomer(ctx, r, id)
		if err != nil {
			return err
		}
		if _, err := r.Addresses.DeleteByCustomerID(ctx, id); err != nil {
			return err
		}
		if err := r.Customers.Delete(ctx, id); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog.ToCustomerResponse(out), nil
}

func requireCustomer(ctx context.Context, r repository.Repositories, id int64) (*entity.Customer, error) {
	c, err := r.Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente con ID %d no encontrado", domain.ErrNotFound, id)
	}
	return c, nil
}
