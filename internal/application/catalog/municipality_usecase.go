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

// MunicipalityUseCase casos de uso para municipios.
type MunicipalityUseCase struct {
	tx repository.TxRunner
}

// NewMunicipalityUseCase construye el caso de uso.
func NewMunicipalityUseCase(tx repository.TxRunner) *MunicipalityUseCase {
	return &MunicipalityUseCase{tx: tx}
}

// Create registra un municipio dentro de un estado existente.
// La unicidad del nombre es global (no por estado): primero se busca el nombre tal cual
// sin distinguir mayúsculas, después el nombre sin acentos.
func (uc *MunicipalityUseCase) Create(ctx context.Context, in dto.CreateMunicipalityRequest) (*dto.MunicipalityResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.Municipality
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		if _, err := RequireState(ctx, r, in.StateID); err != nil {
			return err
		}
		existing, err := firstMatch(ctx, r.Municipalities.FindByName, name, normalizer.StripAccents(name))
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: ya existe un municipio con el nombre %q", domain.ErrConflict, existing.Name)
		}
		now := time.Now().UTC()
		m := &entity.Municipality{StateID: in.StateID, Name: name, CreatedAt: now, UpdatedAt: now}
		if err := r.Municipalities.Create(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMunicipalityResponse(out), nil
}

// List devuelve todos los municipios.
func (uc *MunicipalityUseCase) List(ctx context.Context) ([]dto.MunicipalityResponse, error) {
	var out []dto.MunicipalityResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		list, err := r.Municipalities.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.MunicipalityResponse, 0, len(list))
		for _, m := range list {
			out = append(out, *toMunicipalityResponse(m))
		}
		return nil
	})
	return out, err
}

// Get devuelve el municipio con sus localidades.
func (uc *MunicipalityUseCase) Get(ctx context.Context, id int64) (*dto.MunicipalityDetailResponse, error) {
	var out *dto.MunicipalityDetailResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		m, err := RequireMunicipality(ctx, r, id)
		if err != nil {
			return err
		}
		children, err := r.Localities.ListByMunicipality(ctx, id)
		if err != nil {
			return err
		}
		out = &dto.MunicipalityDetailResponse{
			MunicipalityResponse: *toMunicipalityResponse(m),
			Localities:           make([]dto.LocalityResponse, 0, len(children)),
		}
		for _, l := range children {
			out.Localities = append(out.Localities, *toLocalityResponse(l))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica una actualización parcial; si cambia el estado, el nuevo debe existir.
// Sin validación de duplicados.
func (uc *MunicipalityUseCase) Update(ctx context.Context, id int64, in dto.UpdateMunicipalityRequest) (*dto.MunicipalityResponse, error) {
	var out *entity.Municipality
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		m, err := RequireMunicipality(ctx, r, id)
		if err != nil {
			return err
		}
		if in.StateID != nil {
			if _, err := RequireState(ctx, r, *in.StateID); err != nil {
				return err
			}
		}
		entity.MunicipalityPatch{Name: trimmed(in.Name), StateID: in.StateID}.Apply(m)
		m.UpdatedAt = time.Now().UTC()
		if err := r.Municipalities.Update(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMunicipalityResponse(out), nil
}

// Remove elimina el municipio y devuelve su último valor.
func (uc *MunicipalityUseCase) Remove(ctx context.Context, id int64) (*dto.MunicipalityResponse, error) {
	var out *entity.Municipality
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		m, err := RequireMunicipality(ctx, r, id)
		if err != nil {
			return err
		}
		if err := r.Municipalities.Delete(ctx, id); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMunicipalityResponse(out), nil
}
