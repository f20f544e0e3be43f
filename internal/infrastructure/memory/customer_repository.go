package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

var (
	_ repository.AddressRepository  = (*addressRepo)(nil)
	_ repository.CustomerRepository = (*customerRepo)(nil)
)

type addressRepo struct{ d *data }

func (r *addressRepo) checkRefs(a *entity.Address) error {
	if _, ok := r.d.localities[a.LocalityID]; !ok {
		return fmt.Errorf("%w: localidad %d", domain.ErrNotFound, a.LocalityID)
	}
	if a.CustomerID == nil {
		return nil
	}
	if _, ok := r.d.customers[*a.CustomerID]; !ok {
		return fmt.Errorf("%w: cliente %d", domain.ErrNotFound, *a.CustomerID)
	}
	for id, other := range r.d.addresses {
		if id != a.ID && other.CustomerID != nil && *other.CustomerID == *a.CustomerID {
			return fmt.Errorf("%w: el cliente %d ya tiene dirección", domain.ErrConflict, *a.CustomerID)
		}
	}
	return nil
}

func (r *addressRepo) Create(_ context.Context, a *entity.Address) error {
	if err := r.checkRefs(a); err != nil {
		return err
	}
	a.ID = r.d.nextID()
	r.d.addresses[a.ID] = copyAddress(*a)
	return nil
}

func (r *addressRepo) GetByID(_ context.Context, id int64) (*entity.Address, error) {
	a, ok := r.d.addresses[id]
	if !ok {
		return nil, nil
	}
	out := copyAddress(a)
	return &out, nil
}

func (r *addressRepo) GetByCustomerID(_ context.Context, customerID int64) (*entity.Address, error) {
	for _, id := range sortedKeys(r.d.addresses) {
		a := r.d.addresses[id]
		if a.CustomerID != nil && *a.CustomerID == customerID {
			out := copyAddress(a)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *addressRepo) List(_ context.Context) ([]*entity.Address, error) {
	out := make([]*entity.Address, 0, len(r.d.addresses))
	for _, id := range sortedKeys(r.d.addresses) {
		a := copyAddress(r.d.addresses[id])
		out = append(out, &a)
	}
	return out, nil
}

func (r *addressRepo) Update(_ context.Context, a *entity.Address) error {
	if _, ok := r.d.addresses[a.ID]; !ok {
		return nil
	}
	if err := r.checkRefs(a); err != nil {
		return err
	}
	r.d.addresses[a.ID] = copyAddress(*a)
	return nil
}

func (r *addressRepo) Delete(_ context.Context, id int64) error {
	delete(r.d.addresses, id)
	return nil
}

func (r *addressRepo) DeleteByCustomerID(_ context.Context, customerID int64) (int64, error) {
	var n int64
	for id, a := range r.d.addresses {
		if a.CustomerID != nil && *a.CustomerID == customerID {
			delete(r.d.addresses, id)
			n++
		}
	}
	return n, nil
}

func copyAddress(a entity.Address) entity.Address {
	if a.InteriorNumber != nil {
		v := *a.InteriorNumber
		a.InteriorNumber = &v
	}
	if a.CustomerID != nil {
		v := *a.CustomerID
		a.CustomerID = &v
	}
	return a
}

type customerRepo struct{ d *data }

func (r *customerRepo) Create(_ context.Context, c *entity.Customer) error {
	c.ID = r.d.nextID()
	r.d.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := r.d.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *customerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.d.customers))
	for _, id := range sortedKeys(r.d.customers) {
		c := r.d.customers[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *customerRepo) Update(_ context.Context, c *entity.Customer) error {
	if _, ok := r.d.customers[c.ID]; !ok {
		return nil
	}
	r.d.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) Delete(_ context.Context, id int64) error {
	for _, a := range r.d.addresses {
		if a.CustomerID != nil && *a.CustomerID == id {
			return fmt.Errorf("%w: el cliente %d tiene direcciones", domain.ErrConflict, id)
		}
	}
	delete(r.d.customers, id)
	return nil
}
