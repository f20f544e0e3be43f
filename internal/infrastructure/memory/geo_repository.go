package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var (
	_ repository.StateRepository        = (*stateRepo)(nil)
	_ repository.MunicipalityRepository = (*municipalityRepo)(nil)
	_ repository.LocalityRepository     = (*localityRepo)(nil)
)

type stateRepo struct{ d *data }

func (r *stateRepo) Create(_ context.Context, s *entity.State) error {
	for _, other := range r.d.states {
		if other.Name == s.Name {
			return fmt.Errorf("%w: estado %q duplicado", domain.ErrConflict, s.Name)
		}
	}
	s.ID = r.d.nextID()
	r.d.states[s.ID] = *s
	return nil
}

func (r *stateRepo) GetByID(_ context.Context, id int64) (*entity.State, error) {
	s, ok := r.d.states[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *stateRepo) FindByName(_ context.Context, name string) (*entity.State, error) {
	for _, id := range sortedKeys(r.d.states) {
		s := r.d.states[id]
		if strings.ToLower(s.Name) == strings.ToLower(name) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *stateRepo) List(_ context.Context) ([]*entity.State, error) {
	out := make([]*entity.State, 0, len(r.d.states))
	for _, id := range sortedKeys(r.d.states) {
		s := r.d.states[id]
		out = append(out, &s)
	}
	return out, nil
}

func (r *stateRepo) Update(_ context.Context, s *entity.State) error {
	if _, ok := r.d.states[s.ID]; !ok {
		return nil
	}
	for id, other := range r.d.states {
		if id != s.ID && other.Name == s.Name {
			return fmt.Errorf("%w: estado %q duplicado", domain.ErrConflict, s.Name)
		}
	}
	r.d.states[s.ID] = *s
	return nil
}

func (r *stateRepo) Delete(_ context.Context, id int64) error {
	for _, m := range r.d.municipalities {
		if m.StateID == id {
			return fmt.Errorf("%w: el estado %d tiene municipios", domain.ErrConflict, id)
		}
	}
	delete(r.d.states, id)
	return nil
}

type municipalityRepo struct{ d *data }

func (r *municipalityRepo) checkRefs(m *entity.Municipality) error {
	if _, ok := r.d.states[m.StateID]; !ok {
		return fmt.Errorf("%w: estado %d", domain.ErrNotFound, m.StateID)
	}
	for id, other := range r.d.municipalities {
		if id != m.ID && strings.ToLower(other.Name) == strings.ToLower(m.Name) {
			return fmt.Errorf("%w: municipio %q duplicado", domain.ErrConflict, m.Name)
		}
	}
	return nil
}

func (r *municipalityRepo) Create(_ context.Context, m *entity.Municipality) error {
	if err := r.checkRefs(m); err != nil {
		return err
	}
	m.ID = r.d.nextID()
	r.d.municipalities[m.ID] = *m
	return nil
}

func (r *municipalityRepo) GetByID(_ context.Context, id int64) (*entity.Municipality, error) {
	m, ok := r.d.municipalities[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *municipalityRepo) FindByName(_ context.Context, name string) (*entity.Municipality, error) {
	for _, id := range sortedKeys(r.d.municipalities) {
		m := r.d.municipalities[id]
		if strings.ToLower(m.Name) == strings.ToLower(name) {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *municipalityRepo) List(_ context.Context) ([]*entity.Municipality, error) {
	return r.filter(func(entity.Municipality) bool { return true }), nil
}

func (r *municipalityRepo) ListByState(_ context.Context, stateID int64) ([]*entity.Municipality, error) {
	return r.filter(func(m entity.Municipality) bool { return m.StateID == stateID }), nil
}

func (r *municipalityRepo) filter(keep func(entity.Municipality) bool) []*entity.Municipality {
	out := make([]*entity.Municipality, 0)
	for _, id := range sortedKeys(r.d.municipalities) {
		m := r.d.municipalities[id]
		if keep(m) {
			out = append(out, &m)
		}
	}
	return out
}

func (r *municipalityRepo) Update(_ context.Context, m *entity.Municipality) error {
	if _, ok := r.d.municipalities[m.ID]; !ok {
		return nil
	}
	if err := r.checkRefs(m); err != nil {
		return err
	}
	r.d.municipalities[m.ID] = *m
	return nil
}

func (r *municipalityRepo) Delete(_ context.Context, id int64) error {
	for _, l := range r.d.localities {
		if l.MunicipalityID == id {
			return fmt.Errorf("%w: el municipio %d tiene localidades", domain.ErrConflict, id)
		}
	}
	delete(r.d.municipalities, id)
	return nil
}

type localityRepo struct{ d *data }

func (r *localityRepo) checkRefs(l *entity.Locality) error {
	if _, ok := r.d.municipalities[l.MunicipalityID]; !ok {
		return fmt.Errorf("%w: municipio %d", domain.ErrNotFound, l.MunicipalityID)
	}
	for id, other := range r.d.localities {
		if id != l.ID && other.MunicipalityID == l.MunicipalityID && other.Name == l.Name {
			return fmt.Errorf("%w: localidad %q duplicada en el municipio %d", domain.ErrConflict, l.Name, l.MunicipalityID)
		}
	}
	return nil
}

func (r *localityRepo) Create(_ context.Context, l *entity.Locality) error {
	if err := r.checkRefs(l); err != nil {
		return err
	}
	l.ID = r.d.nextID()
	r.d.localities[l.ID] = *l
	return nil
}

func (r *localityRepo) GetByID(_ context.Context, id int64) (*entity.Locality, error) {
	l, ok := r.d.localities[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *localityRepo) FindByMunicipalityAndName(_ context.Context, municipalityID int64, name string) (*entity.Locality, error) {
	for _, id := range sortedKeys(r.d.localities) {
		l := r.d.localities[id]
		if l.MunicipalityID == municipalityID && l.Name == name {
			return &l, nil
		}
	}
	return nil, nil
}

func (r *localityRepo) GetAncestry(_ context.Context, id int64) (*entity.LocalityAncestry, error) {
	l, ok := r.d.localities[id]
	if !ok {
		return nil, nil
	}
	m, ok := r.d.municipalities[l.MunicipalityID]
	if !ok {
		return nil, nil
	}
	s, ok := r.d.states[m.StateID]
	if !ok {
		return nil, nil
	}
	return &entity.LocalityAncestry{Locality: l, Municipality: m, State: s}, nil
}

func (r *localityRepo) List(_ context.Context) ([]*entity.Locality, error) {
	return r.filter(func(entity.Locality) bool { return true }), nil
}

func (r *localityRepo) ListByMunicipality(_ context.Context, municipalityID int64) ([]*entity.Locality, error) {
	return r.filter(func(l entity.Locality) bool { return l.MunicipalityID == municipalityID }), nil
}

func (r *localityRepo) filter(keep func(entity.Locality) bool) []*entity.Locality {
	out := make([]*entity.Locality, 0)
	for _, id := range sortedKeys(r.d.localities) {
		l := r.d.localities[id]
		if keep(l) {
			out = append(out, &l)
		}
	}
	return out
}

func (r *localityRepo) Update(_ context.Context, l *entity.Locality) error {
	if _, ok := r.d.localities[l.ID]; !ok {
		return nil
	}
	if err := r.checkRefs(l); err != nil {
		return err
	}
	r.d.localities[l.ID] = *l
	return nil
}

func (r *localityRepo) Delete(_ context.Context, id int64) error {
	for _, a := range r.d.addresses {
		if a.LocalityID == id {
			return fmt.Errorf("%w: la localidad %d tiene direcciones", domain.ErrConflict, id)
		}
	}
	delete(r.d.localities, id)
	return nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
