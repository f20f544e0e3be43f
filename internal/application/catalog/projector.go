package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

// ProjectionDepth niveles de ancestros que se anidan bajo una dirección:
// Localidad → Municipio → Estado. Es fijo para todas las vistas.
const ProjectionDepth = 3

// Projector arma las vistas anidadas de lectura para entidades que incluyen una dirección.
type Projector struct{}

// NewProjector construye el proyector.
func NewProjector() *Projector {
	return &Projector{}
}

// Address proyecta una dirección con su cadena de ancestros.
func (p *Projector) Address(ctx context.Context, r repository.Repositories, a *entity.Address) (*dto.AddressView, error) {
	anc, err := ancestry(ctx, r, a.LocalityID)
	if err != nil {
		return nil, err
	}
	return addressView(a, anc), nil
}

// Addresses proyecta varias direcciones; la cadena de cada localidad se consulta una sola vez.
func (p *Projector) Addresses(ctx context.Context, r repository.Repositories, list []*entity.Address) ([]dto.AddressView, error) {
	seen := make(map[int64]*entity.LocalityAncestry)
	out := make([]dto.AddressView, 0, len(list))
	for _, a := range list {
		anc, ok := seen[a.LocalityID]
		if !ok {
			var err error
			anc, err = ancestry(ctx, r, a.LocalityID)
			if err != nil {
				return nil, err
			}
			seen[a.LocalityID] = anc
		}
		out = append(out, *addressView(a, anc))
	}
	return out, nil
}

// Customer proyecta un cliente con su dirección. Address puede ser nil.
func (p *Projector) Customer(ctx context.Context, r repository.Repositories, c *entity.Customer, a *entity.Address) (*dto.CustomerView, error) {
	view := &dto.CustomerView{CustomerResponse: *ToCustomerResponse(c)}
	if a == nil {
		return view, nil
	}
	addr, err := p.Address(ctx, r, a)
	if err != nil {
		return nil, err
	}
	view.Address = addr
	return view, nil
}

func ancestry(ctx context.Context, r repository.Repositories, localityID int64) (*entity.LocalityAncestry, error) {
	anc, err := r.Localities.GetAncestry(ctx, localityID)
	if err != nil {
		return nil, err
	}
	if anc == nil {
		return nil, fmt.Errorf("%w: localidad con ID %d no encontrada", domain.ErrNotFound, localityID)
	}
	return anc, nil
}

func addressView(a *entity.Address, anc *entity.LocalityAncestry) *dto.AddressView {
	return &dto.AddressView{
		ID:             a.ID,
		Street:         a.Street,
		ExteriorNumber: a.ExteriorNumber,
		InteriorNumber: a.InteriorNumber,
		PostalCode:     a.PostalCode,
		LocalityID:     a.LocalityID,
		CustomerID:     a.CustomerID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Locality: dto.LocalityView{
			ID:             anc.Locality.ID,
			Name:           anc.Locality.Name,
			MunicipalityID: anc.Locality.MunicipalityID,
			Municipality: dto.MunicipalityView{
				ID:      anc.Municipality.ID,
				Name:    anc.Municipality.Name,
				StateID: anc.Municipality.StateID,
				State: dto.StateView{
					ID:   anc.State.ID,
					Name: anc.State.Name,
				},
			},
		},
	}
}

// ToCustomerResponse convierte un cliente sin su dirección.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		RFC:       c.RFC,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
