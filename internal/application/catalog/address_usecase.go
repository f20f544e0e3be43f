package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

// AddressUseCase casos de uso para direcciones independientes de un cliente.
type AddressUseCase struct {
	tx        repository.TxRunner
	projector *Projector
}

// NewAddressUseCase construye el caso de uso.
func NewAddressUseCase(tx repository.TxRunner, projector *Projector) *AddressUseCase {
	return &AddressUseCase{tx: tx, projector: projector}
}

// Create registra una dirección en una localidad existente. No hay validación de duplicados.
func (uc *AddressUseCase) Create(ctx context.Context, in dto.CreateAddressRequest) (*dto.AddressView, error) {
	var out *dto.AddressView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := RequireLocality(ctx, r, in.LocalityID); err != nil {
			return err
		}
		now := time.Now().UTC()
		a := &entity.Address{
			Street:         in.Street,
			ExteriorNumber: in.ExteriorNumber,
			InteriorNumber: in.InteriorNumber,
			PostalCode:     in.PostalCode,
			LocalityID:     in.LocalityID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := r.Addresses.Create(ctx, a); err != nil {
			return err
		}
		view, err := uc.projector.Address(ctx, r, a)
		out = view
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve todas las direcciones con su proyección.
func (uc *AddressUseCase) List(ctx context.Context) ([]dto.AddressView, error) {
	var out []dto.AddressView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		list, err := r.Addresses.List(ctx)
		if err != nil {
			return err
		}
		out, err = uc.projector.Addresses(ctx, r, list)
		return err
	})
	return out, err
}

// Get devuelve la dirección con Localidad → Municipio → Estado.
func (uc *AddressUseCase) Get(ctx context.Context, id int64) (*dto.AddressView, error) {
	var out *dto.AddressView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		a, err := RequireAddress(ctx, r, id)
		if err != nil {
			return err
		}
		out, err = uc.projector.Address(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica una actualización parcial; si cambia la localidad, la nueva debe existir.
func (uc *AddressUseCase) Update(ctx context.Context, id int64, in dto.UpdateAddressRequest) (*dto.AddressView, error) {
	var out *dto.AddressView
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		a, err := RequireAddress(ctx, r, id)
		if err != nil {
			return err
		}
		patch := AddressPatchFrom(in)
		if err := ApplyAddressPatch(ctx, r, a, patch); err != nil {
			return err
		}
		out, err = uc.projector.Address(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove elimina la dirección y devuelve su último valor.
func (uc *AddressUseCase) Remove(ctx context.Context, id int64) (*dto.AddressResponse, error) {
	var out *entity.Address
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		a, err := RequireAddress(ctx, r, id)
		if err != nil {
			return err
		}
		if err := r.Addresses.Delete(ctx, id); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToAddressResponse(out), nil
}

// AddressPatchFrom traduce el body de actualización a un patch de dominio.
func AddressPatchFrom(in dto.UpdateAddressRequest) entity.AddressPatch {
	return entity.AddressPatch{
		Street:         in.Street,
		ExteriorNumber: in.ExteriorNumber,
		InteriorNumber: in.InteriorNumber,
		PostalCode:     in.PostalCode,
		LocalityID:     in.LocalityID,
	}
}

// ApplyAddressPatch verifica la nueva localidad (si viene), aplica el patch y persiste.
// Un patch vacío no toca el almacén.
func ApplyAddressPatch(ctx context.Context, r repository.Repositories, a *entity.Address, patch entity.AddressPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if patch.LocalityID != nil {
		if _, err := RequireLocality(ctx, r, *patch.LocalityID); err != nil {
			return err
		}
	}
	patch.Apply(a)
	a.UpdatedAt = time.Now().UTC()
	return r.Addresses.Update(ctx, a)
}
