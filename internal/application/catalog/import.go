package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/normalizer"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

// StateSeed estado a importar con sus municipios.
type StateSeed struct {
	Name           string
	Municipalities []MunicipalitySeed
}

// MunicipalitySeed municipio a importar con los nombres de sus localidades.
type MunicipalitySeed struct {
	Name       string
	Localities []string
}

// ImportResult conteo de filas creadas y reutilizadas por nivel.
// Skipped lista los municipios que ya existían bajo otro estado (la unicidad es global);
// sus localidades no se importan.
type ImportResult struct {
	StatesCreated         int
	StatesReused          int
	MunicipalitiesCreated int
	MunicipalitiesReused  int
	LocalitiesCreated     int
	LocalitiesReused      int
	Skipped               []string
}

// Importer carga un catálogo completo usando los mismos casos de uso (y por lo tanto las
// mismas reglas de unicidad) que la API. Es idempotente: lo que ya existe se reutiliza.
type Importer struct {
	tx             repository.TxRunner
	states         *StateUseCase
	municipalities *MunicipalityUseCase
	localities     *LocalityUseCase
}

// NewImporter construye el importador.
func NewImporter(tx repository.TxRunner, states *StateUseCase, municipalities *MunicipalityUseCase, localities *LocalityUseCase) *Importer {
	return &Importer{tx: tx, states: states, municipalities: municipalities, localities: localities}
}

// Import crea los registros faltantes. Cada alta corre en su propia transacción; un error
// distinto de ErrConflict detiene la importación y devuelve lo avanzado hasta ese punto.
func (im *Importer) Import(ctx context.Context, seeds []StateSeed) (ImportResult, error) {
	var res ImportResult
	for _, s := range seeds {
		stateID, created, err := im.ensureState(ctx, s.Name)
		if err != nil {
			return res, fmt.Errorf("estado %q: %w", s.Name, err)
		}
		if created {
			res.StatesCreated++
		} else {
			res.StatesReused++
		}

		for _, m := range s.Municipalities {
			municipalityID, created, err := im.ensureMunicipality(ctx, stateID, m.Name)
			if errors.Is(err, errOtherState) {
				res.Skipped = append(res.Skipped, m.Name)
				continue
			}
			if err != nil {
				return res, fmt.Errorf("municipio %q: %w", m.Name, err)
			}
			if created {
				res.MunicipalitiesCreated++
			} else {
				res.MunicipalitiesReused++
			}

			for _, l := range m.Localities {
				_, err := im.localities.Create(ctx, dto.CreateLocalityRequest{Name: l, MunicipalityID: municipalityID})
				switch {
				case err == nil:
					res.LocalitiesCreated++
				case errors.Is(err, domain.ErrConflict):
					res.LocalitiesReused++
				default:
					return res, fmt.Errorf("localidad %q: %w", l, err)
				}
			}
		}
	}
	return res, nil
}

var errOtherState = errors.New("municipio registrado en otro estado")

func (im *Importer) ensureState(ctx context.Context, name string) (int64, bool, error) {
	out, err := im.states.Create(ctx, dto.CreateStateRequest{Name: name})
	if err == nil {
		return out.ID, true, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return 0, false, err
	}
	var found *entity.State
	err = im.tx.Run(ctx, func(r repository.Repositories) error {
		found, err = firstMatch(ctx, r.States.FindByName, name, normalizer.Normalize(name))
		return err
	})
	if err != nil {
		return 0, false, err
	}
	if found == nil {
		return 0, false, fmt.Errorf("%w: estado %q", domain.ErrNotFound, name)
	}
	return found.ID, false, nil
}

func (im *Importer) ensureMunicipality(ctx context.Context, stateID int64, name string) (int64, bool, error) {
	out, err := im.municipalities.Create(ctx, dto.CreateMunicipalityRequest{Name: name, StateID: stateID})
	if err == nil {
		return out.ID, true, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return 0, false, err
	}
	var found *entity.Municipality
	err = im.tx.Run(ctx, func(r repository.Repositories) error {
		found, err = firstMatch(ctx, r.Municipalities.FindByName, name, normalizer.StripAccents(name))
		return err
	})
	if err != nil {
		return 0, false, err
	}
	if found == nil {
		return 0, false, fmt.Errorf("%w: municipio %q", domain.ErrNotFound, name)
	}
	if found.StateID != stateID {
		return 0, false, errOtherState
	}
	return found.ID, false, nil
}
