package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/normalizer"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

// LocalityUseCase casos de uso para localidades.
type LocalityUseCase struct {
	tx repository.TxRunner
}

// NewLocalityUseCase construye el caso de uso.
func NewLocalityUseCase(tx repository.TxRunner) *LocalityUseCase {
	return &LocalityUseCase{tx: tx}
}

// Create registra una localidad con nombre normalizado. El duplicado se busca solo dentro
// del municipio indicado: el mismo nombre en otro municipio es válido.
func (uc *LocalityUseCase) Create(ctx context.Context, in dto.CreateLocalityRequest) (*dto.LocalityResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	normalized := normalizer.Normalize(name)

	var out *entity.Locality
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := RequireMunicipality(ctx, r, in.MunicipalityID); err != nil {
			return err
		}
		existing, err := r.Localities.FindByMunicipalityAndName(ctx, in.MunicipalityID, normalized)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: la localidad %q ya existe en el municipio %d", domain.ErrConflict, normalized, in.MunicipalityID)
		}
		now := time.Now().UTC()
		l := &entity.Locality{MunicipalityID: in.MunicipalityID, Name: normalized, CreatedAt: now, UpdatedAt: now}
		if err := r.Localities.Create(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocalityResponse(out), nil
}

// List devuelve todas las localidades.
func (uc *LocalityUseCase) List(ctx context.Context) ([]dto.LocalityResponse, error) {
	var out []dto.LocalityResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		list, err := r.Localities.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.LocalityResponse, 0, len(list))
		for _, l := range list {
			out = append(out, *toLocalityResponse(l))
		}
		return nil
	})
	return out, err
}

// Get devuelve la localidad.
func (uc *LocalityUseCase) Get(ctx context.Context, id int64) (*dto.LocalityResponse, error) {
	var out *entity.Locality
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		l, err := RequireLocality(ctx, r, id)
		out = l
		return err
	})
	if err != nil {
		return nil, err
	}
	return toLocalityResponse(out), nil
}

// Update aplica una actualización parcial; si cambia el municipio, el nuevo debe existir.
// Sin validación de duplicados.
func (uc *LocalityUseCase) Update(ctx context.Context, id int64, in dto.UpdateLocalityRequest) (*dto.LocalityResponse, error) {
	var out *entity.Locality
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		l, err := RequireLocality(ctx, r, id)
		if err != nil {
			return err
		}
		if in.MunicipalityID != nil {
			if _, err := RequireMunicipality(ctx, r, *in.MunicipalityID); err != nil {
				return err
			}
		}
		entity.LocalityPatch{Name: trimmed(in.Name), MunicipalityID: in.MunicipalityID}.Apply(l)
		l.UpdatedAt = time.Now().UTC()
		if err := r.Localities.Update(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocalityResponse(out), nil
}

// Remove elimina la localidad y devuelve su último valor. Si hay direcciones que la
// referencian, el almacén rechaza la operación con ErrConflict.
func (uc *LocalityUseCase) Remove(ctx context.Context, id int64) (*dto.LocalityResponse, error) {
	var out *entity.Locality
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		l, err := RequireLocality(ctx, r, id)
		if err != nil {
			return err
		}
		if err := r.Localities.Delete(ctx, id); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocalityResponse(out), nil
}
