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

// StateUseCase casos de uso para estados.
type StateUseCase struct {
	tx repository.TxRunner
}

// NewStateUseCase construye el caso de uso.
func NewStateUseCase(tx repository.TxRunner) *StateUseCase {
	return &StateUseCase{tx: tx}
}

// Create registra un estado. El nombre se persiste normalizado; si ya existe un estado
// con el mismo nombre (sin distinguir mayúsculas, antes o después de normalizar) devuelve ErrConflict.
func (uc *StateUseCase) Create(ctx context.Context, in dto.CreateStateRequest) (*dto.StateResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	normalized := normalizer.Normalize(name)

	var out *entity.State
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		existing, err := firstMatch(ctx, r.States.FindByName, name, normalized)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: ya existe un estado con el nombre %q", domain.ErrConflict, existing.Name)
		}
		now := time.Now().UTC()
		state := &entity.State{Name: normalized, CreatedAt: now, UpdatedAt: now}
		if err := r.States.Create(ctx, state); err != nil {
			return err
		}
		out = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStateResponse(out), nil
}

// List devuelve todos los estados.
func (uc *StateUseCase) List(ctx context.Context) ([]dto.StateResponse, error) {
	var out []dto.StateResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		list, err := r.States.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.StateResponse, 0, len(list))
		for _, s := range list {
			out = append(out, *toStateResponse(s))
		}
		return nil
	})
	return out, err
}

// Get devuelve el estado con sus municipios.
func (uc *StateUseCase) Get(ctx context.Context, id int64) (*dto.StateDetailResponse, error) {
	var out *dto.StateDetailResponse
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		state, err := RequireState(ctx, r, id)
		if err != nil {
			return err
		}
		children, err := r.Municipalities.ListByState(ctx, id)
		if err != nil {
			return err
		}
		out = &dto.StateDetailResponse{
			StateResponse:  *toStateResponse(state),
			Municipalities: make([]dto.MunicipalityResponse, 0, len(children)),
		}
		for _, m := range children {
			out.Municipalities = append(out.Municipalities, *toMunicipalityResponse(m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica una actualización parcial. No vuelve a validar duplicados de nombre:
// esa regla solo se aplica al crear.
func (uc *StateUseCase) Update(ctx context.Context, id int64, in dto.UpdateStateRequest) (*dto.StateResponse, error) {
	var out *entity.State
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		state, err := RequireState(ctx, r, id)
		if err != nil {
			return err
		}
		entity.StatePatch{Name: trimmed(in.Name)}.Apply(state)
		state.UpdatedAt = time.Now().UTC()
		if err := r.States.Update(ctx, state); err != nil {
			return err
		}
		out = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStateResponse(out), nil
}

// Remove elimina el estado y devuelve su último valor. No elimina municipios en cascada.
func (uc *StateUseCase) Remove(ctx context.Context, id int64) (*dto.StateResponse, error) {
	var out *entity.State
	err := uc.tx.Run(ctx, func(r repository.Repositories) error {
		state, err := RequireState(ctx, r, id)
		if err != nil {
			return err
		}
		if err := r.States.Delete(ctx, id); err != nil {
			return err
		}
		out = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStateResponse(out), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
