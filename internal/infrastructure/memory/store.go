// Package memory implementa los repositorios en memoria. Las transacciones se serializan
// con un mutex y trabajan sobre una copia del estado que solo se publica al confirmar,
// de modo que un error en el callback no deja escrituras parciales.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var _ repository.TxRunner = (*Store)(nil)

// Store almacén en memoria; implementa repository.TxRunner.
type Store struct {
	mu sync.Mutex
	d  *data
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{d: newData()}
}

// Run ejecuta fn sobre una copia del almacén y la publica solo si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.d.clone()
	if err := fn(work.repositories()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.d = work
	return nil
}

type data struct {
	seq            int64
	states         map[int64]entity.State
	municipalities map[int64]entity.Municipality
	localities     map[int64]entity.Locality
	addresses      map[int64]entity.Address
	customers      map[int64]entity.Customer
}

func newData() *data {
	return &data{
		states:         make(map[int64]entity.State),
		municipalities: make(map[int64]entity.Municipality),
		localities:     make(map[int64]entity.Locality),
		addresses:      make(map[int64]entity.Address),
		customers:      make(map[int64]entity.Customer),
	}
}

// clone copia los mapas; las entidades son valores, salvo los punteros opcionales de
// Address, que se copian al leer y al escribir.
func (d *data) clone() *data {
	return &data{
		seq:            d.seq,
		states:         maps.Clone(d.states),
		municipalities: maps.Clone(d.municipalities),
		localities:     maps.Clone(d.localities),
		addresses:      maps.Clone(d.addresses),
		customers:      maps.Clone(d.customers),
	}
}

func (d *data) nextID() int64 {
	d.seq++
	return d.seq
}

func (d *data) repositories() repository.Repositories {
	return repository.Repositories{
		States:         &stateRepo{d: d},
		Municipalities: &municipalityRepo{d: d},
		Localities:     &localityRepo{d: d},
		Addresses:      &addressRepo{d: d},
		Customers:      &customerRepo{d: d},
	}
}
